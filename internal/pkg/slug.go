package pkg

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const slugSuffixLen = 8

// GenerateSlug 标题 slug + "-" + 8 位随机后缀，不检查重复
func GenerateSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "article"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLen]
	return base + "-" + suffix
}
