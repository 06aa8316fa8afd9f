package user

import (
	"net/http"

	"terminal-terrace/medium/internal/dto"
	"terminal-terrace/medium/internal/middleware"
	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/packages/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *UserService
}

func NewUserHandler(service *UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register 注册
// @Summary 注册用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 201 {object} UserResponse
// @Failure 422 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, bizErr := h.service.CreateUser(c.Request.Context(), req.User)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	h.respondUser(c, http.StatusCreated, u)
}

// Login 登录
// @Summary 邮箱密码登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} UserResponse
// @Failure 401 {object} response.Response
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, bizErr := h.service.Authenticate(c.Request.Context(), req.User.Email, req.User.Password)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	h.respondUser(c, http.StatusOK, u)
}

// CurrentUser 获取当前用户
// @Summary 当前登录用户
// @Tags 用户
// @Produce json
// @Security TokenAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} response.Response
// @Router /user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("authentication required"),
		))
		return
	}

	h.respondUser(c, http.StatusOK, u)
}

// UpdateUser 更新当前用户
// @Summary 更新当前用户
// @Tags 用户
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body UpdateUserRequest true "待更新字段"
// @Success 200 {object} UserResponse
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /user [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, bizErr := h.service.UpdateUser(c.Request.Context(), middleware.CurrentUserID(c), req.User)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	h.respondUser(c, http.StatusOK, u)
}

func (h *UserHandler) respondUser(c *gin.Context, status int, u *userModel.User) {
	resp, bizErr := h.service.BuildUserResponse(u)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, status, resp)
}
