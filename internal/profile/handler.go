package profile

import (
	"net/http"

	"terminal-terrace/medium/internal/dto"
	"terminal-terrace/medium/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *ProfileService
}

func NewProfileHandler(service *ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile 获取用户主页
// @Summary 获取用户主页
// @Description 登录时 following 表示当前用户是否已关注
// @Tags 个人主页
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} response.Response
// @Router /profiles/{username} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	resp, bizErr := h.service.GetProfile(c.Request.Context(), middleware.CurrentUserID(c), c.Param("username"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// Follow 关注用户
// @Summary 关注用户
// @Tags 个人主页
// @Produce json
// @Security TokenAuth
// @Param username path string true "用户名"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/{username}/follow [post]
func (h *ProfileHandler) Follow(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	resp, bizErr := h.service.Follow(c.Request.Context(), u, c.Param("username"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 个人主页
// @Produce json
// @Security TokenAuth
// @Param username path string true "用户名"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} response.Response
// @Router /profiles/{username}/follow [delete]
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	resp, bizErr := h.service.Unfollow(c.Request.Context(), u, c.Param("username"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}
