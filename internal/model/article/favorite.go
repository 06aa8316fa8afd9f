package article

import "time"

// Favorite 收藏表（用户-文章多对多）
type Favorite struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
