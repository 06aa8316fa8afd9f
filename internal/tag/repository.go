package tag

import (
	"context"
	"strings"

	articleModel "terminal-terrace/medium/internal/model/article"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository 标签表数据访问层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListNames 按名称排序返回全部标签
func (r *TagRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&articleModel.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if names == nil {
		names = []string{}
	}
	return names, err
}

// FindOrCreate 插入不存在的标签，返回新插入的数量
func (r *TagRepository) FindOrCreate(ctx context.Context, names []string) (int64, error) {
	tags := make([]articleModel.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, articleModel.Tag{Name: name})
	}
	if len(tags) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&tags)
	return result.RowsAffected, result.Error
}
