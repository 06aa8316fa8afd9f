package tag

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *TagService) {
	h := NewTagHandler(service)
	r.GET("/tags", h.ListTags)
}
