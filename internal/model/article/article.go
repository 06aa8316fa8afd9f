// Package article 文章相关模型
package article

import (
	"time"

	"terminal-terrace/medium/internal/model/user"
)

// Article 文章表
// Slug 由标题生成，标题变更时重新生成
// FavoritesCount 是 favorites 表的冗余计数，与收藏记录在同一事务中维护
type Article struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Slug           string    `gorm:"type:varchar(300);uniqueIndex;not null" json:"slug"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Description    string    `gorm:"type:text;not null;default:''" json:"description"`
	Body           string    `gorm:"type:text;not null;default:''" json:"body"`
	TagList        TagList   `gorm:"type:text;not null;default:''" json:"tagList"`
	FavoritesCount int       `gorm:"not null;default:0" json:"favoritesCount"`
	AuthorID       uint      `gorm:"not null;index" json:"-"`
	Author         user.User `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
