package article

import (
	"net/http"

	"terminal-terrace/medium/internal/dto"
	"terminal-terrace/medium/internal/middleware"
	"terminal-terrace/medium/packages/response"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	service *ArticleService
}

func NewArticleHandler(service *ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// ListArticles 文章列表
// @Summary 文章列表
// @Description 支持按作者、标签、收藏者过滤，按创建时间倒序
// @Tags 文章
// @Produce json
// @Param author query string false "作者用户名"
// @Param tag query string false "标签"
// @Param favorited query string false "收藏者用户名"
// @Param limit query int false "每页数量，默认 20"
// @Param offset query int false "偏移量"
// @Success 200 {object} ArticlesResponse
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var q ListArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid query parameters"),
		))
		return
	}

	resp, bizErr := h.service.ListArticles(c.Request.Context(), middleware.CurrentUserID(c), q)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// CreateArticle 创建文章
// @Summary 创建文章
// @Tags 文章
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateArticleRequest true "文章内容"
// @Success 201 {object} ArticlesResponse
// @Failure 400 {object} response.Response
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	author, _ := middleware.CurrentUser(c)
	resp, bizErr := h.service.Create(c.Request.Context(), author, req.Article)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusCreated, resp)
}

// GetArticle 获取单篇文章
// @Summary 获取单篇文章
// @Tags 文章
// @Produce json
// @Security TokenAuth
// @Param slug path string true "文章 slug"
// @Success 200 {object} ArticlesResponse
// @Failure 404 {object} response.Response
// @Router /articles/{slug} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	resp, bizErr := h.service.FindBySlug(c.Request.Context(), c.Param("slug"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// UpdateArticle 更新文章
// @Summary 更新文章
// @Description 仅作者可修改，修改标题会生成新的 slug
// @Tags 文章
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param slug path string true "文章 slug"
// @Param request body UpdateArticleRequest true "待更新字段"
// @Success 200 {object} ArticlesResponse
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /articles/{slug} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	resp, bizErr := h.service.Update(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c), req.Article)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// DeleteArticle 删除文章
// @Summary 删除文章
// @Tags 文章
// @Produce json
// @Security TokenAuth
// @Param slug path string true "文章 slug"
// @Success 200 {object} DeleteResponse
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /articles/{slug} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	resp, bizErr := h.service.Delete(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// FavoriteArticle 收藏文章
// @Summary 收藏文章
// @Tags 文章
// @Produce json
// @Security TokenAuth
// @Param slug path string true "文章 slug"
// @Success 200 {object} ArticlesResponse
// @Failure 404 {object} response.Response
// @Router /articles/{slug}/favorite [post]
func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	resp, bizErr := h.service.AddFavorite(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}

// UnfavoriteArticle 取消收藏
// @Summary 取消收藏
// @Tags 文章
// @Produce json
// @Security TokenAuth
// @Param slug path string true "文章 slug"
// @Success 200 {object} ArticlesResponse
// @Failure 404 {object} response.Response
// @Router /articles/{slug}/favorite [delete]
func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	resp, bizErr := h.service.RemoveFavorite(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, resp)
}
