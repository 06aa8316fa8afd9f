package article

import (
	"context"
	"errors"

	articleModel "terminal-terrace/medium/internal/model/article"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleFilter 已解析为 ID 的列表过滤条件
type ArticleFilter struct {
	AuthorID      *uint
	Tag           string
	FavoritedByID *uint
	Limit         int
	Offset        int
}

// ArticleRepository 文章与收藏数据访问层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// FindBySlug 不存在时返回 nil, nil
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*articleModel.Article, error) {
	var a articleModel.Article
	err := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create 只写文章本身，作者通过 AuthorID 关联
func (r *ArticleRepository) Create(ctx context.Context, a *articleModel.Article) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(a, a.ID).Error
}

// Save 更新全部字段，updated_at 自动刷新
func (r *ArticleRepository) Save(ctx context.Context, a *articleModel.Article) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

// Delete 在同一事务中删除文章及其收藏记录，返回删除的文章数
func (r *ArticleRepository) Delete(ctx context.Context, articleID uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&articleModel.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&articleModel.Article{}, articleID)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

// List 返回过滤后的一页文章以及过滤后（分页前）的总数
func (r *ArticleRepository) List(ctx context.Context, f ArticleFilter) ([]articleModel.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&articleModel.Article{})

	if f.AuthorID != nil {
		query = query.Where("author_id = ?", *f.AuthorID)
	}
	if f.Tag != "" {
		// 标签以逗号拼接存储，按子串匹配
		query = query.Where("tag_list LIKE ?", "%"+f.Tag+"%")
	}
	if f.FavoritedByID != nil {
		favorited := r.db.WithContext(ctx).
			Model(&articleModel.Favorite{}).
			Select("article_id").
			Where("user_id = ?", *f.FavoritedByID)
		query = query.Where("id IN (?)", favorited)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []articleModel.Article
	err := query.Session(&gorm.Session{}).
		Preload("Author").
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// FavoritedIDs 返回 articleIDs 中被 userID 收藏的文章
func (r *ArticleRepository) FavoritedIDs(ctx context.Context, userID uint, articleIDs []uint) (map[uint]struct{}, error) {
	result := make(map[uint]struct{})
	if userID == 0 || len(articleIDs) == 0 {
		return result, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&articleModel.Favorite{}).
		Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Pluck("article_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
