package model

import (
	"gorm.io/gorm"

	"terminal-terrace/medium/internal/model/article"
	"terminal-terrace/medium/internal/model/profile"
	"terminal-terrace/medium/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	return db.AutoMigrate(
		&user.User{},
		&profile.Follow{},
		&article.Article{},
		&article.Favorite{},
		&article.Tag{},
	)
}
