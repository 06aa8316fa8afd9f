package tag

import (
	"net/http"

	"terminal-terrace/medium/internal/dto"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	service *TagService
}

func NewTagHandler(service *TagService) *TagHandler {
	return &TagHandler{service: service}
}

// ListTags 获取全部标签
// @Summary 获取标签列表
// @Tags 标签
// @Produce json
// @Success 200 {object} TagsResponse
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	names, bizErr := h.service.ListTags(c.Request.Context())
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, http.StatusOK, TagsResponse{Tags: names})
}
