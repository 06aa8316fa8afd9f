// Package seed 写入开发环境的初始数据，重复执行不会产生重复记录
package seed

import (
	"context"
	"errors"
	"fmt"

	articleModel "terminal-terrace/medium/internal/model/article"
	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/tag"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	seedUsername = "user"
	seedEmail    = "user@mail.com"
	seedPassword = "password"
)

var seedTags = []string{"dragons-seed", "coffee-seed", "nestjs-seed"}

var seedArticles = []articleModel.Article{
	{
		Slug:        "article-one",
		Title:       "Article one",
		Description: "Description for article one",
		Body:        "Body for article one",
		TagList:     articleModel.TagList{"tag-1", "tag-2"},
	},
	{
		Slug:        "article-two",
		Title:       "Article two",
		Description: "Description for article two",
		Body:        "Body for article two",
		TagList:     articleModel.TagList{"tag-3", "tag-4"},
	},
}

// Run 在一个事务中写入种子标签、用户和文章，提交后清除标签缓存
func Run(ctx context.Context, db *gorm.DB, cache *tag.TagCache) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := tag.NewTagRepository(tx)
		if _, err := tags.FindOrCreate(ctx, seedTags); err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}

		author, err := seedUser(tx)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		for _, a := range seedArticles {
			a.AuthorID = author.ID
			result := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
				Create(&a)
			if result.Error != nil {
				return fmt.Errorf("seed article %s: %w", a.Slug, result.Error)
			}
			if _, err := tags.FindOrCreate(ctx, a.TagList); err != nil {
				return fmt.Errorf("seed article tags: %w", err)
			}
		}

		zap.L().Info("seed data written",
			zap.String("user", seedEmail),
			zap.Int("articles", len(seedArticles)))
		return nil
	})
	if err != nil {
		return err
	}

	if err := cache.Invalidate(ctx); err != nil {
		zap.L().Warn("invalidate tag cache failed", zap.Error(err))
	}
	return nil
}

func seedUser(tx *gorm.DB) (*userModel.User, error) {
	var u userModel.User
	err := tx.Where("email = ?", seedEmail).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u = userModel.User{Username: seedUsername, Email: seedEmail, Password: string(hash)}
	if err := tx.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
