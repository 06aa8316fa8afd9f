package article

import (
	"context"

	articleModel "terminal-terrace/medium/internal/model/article"
	"terminal-terrace/medium/packages/response"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addFavorite 收藏记录与计数在同一事务中写入，已收藏时不做任何修改
func (r *ArticleRepository) addFavorite(ctx context.Context, articleID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&articleModel.Favorite{UserID: userID, ArticleID: articleID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&articleModel.Article{}).
			Where("id = ?", articleID).
			Update("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
}

// removeFavorite 未收藏时不做任何修改，计数不会小于 0
func (r *ArticleRepository) removeFavorite(ctx context.Context, articleID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&articleModel.Favorite{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&articleModel.Article{}).
			Where("id = ?", articleID).
			Update("favorites_count", gorm.Expr("CASE WHEN favorites_count > 0 THEN favorites_count - 1 ELSE 0 END")).Error
	})
}

// AddFavorite 收藏文章，重复收藏不会改变计数
func (s *ArticleService) AddFavorite(ctx context.Context, slug string, userID uint) (ArticlesResponse, *response.BusinessError) {
	return s.toggleFavorite(ctx, slug, userID, s.repo.addFavorite)
}

// RemoveFavorite 取消收藏，未收藏时为空操作
func (s *ArticleService) RemoveFavorite(ctx context.Context, slug string, userID uint) (ArticlesResponse, *response.BusinessError) {
	return s.toggleFavorite(ctx, slug, userID, s.repo.removeFavorite)
}

func (s *ArticleService) toggleFavorite(
	ctx context.Context,
	slug string,
	userID uint,
	apply func(ctx context.Context, articleID, userID uint) error,
) (ArticlesResponse, *response.BusinessError) {
	a, bizErr := s.findArticle(ctx, slug)
	if bizErr != nil {
		return ArticlesResponse{}, bizErr
	}

	if err := apply(ctx, a.ID, userID); err != nil {
		return ArticlesResponse{}, internalError("更新收藏失败", err)
	}

	// 重新读取以返回最新的计数
	a, bizErr = s.findArticle(ctx, slug)
	if bizErr != nil {
		return ArticlesResponse{}, bizErr
	}
	return singleArticleResponse(a), nil
}
