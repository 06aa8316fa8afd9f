package tag

import (
	"context"

	"terminal-terrace/medium/packages/response"

	"go.uber.org/zap"
)

// TagsResponse GET /tags 返回结构
type TagsResponse struct {
	Tags []string `json:"tags"`
}

type TagService struct {
	repo  *TagRepository
	cache *TagCache
}

func NewTagService(repo *TagRepository, cache *TagCache) *TagService {
	return &TagService{repo: repo, cache: cache}
}

// ListTags 优先读缓存，缓存异常时回退到数据库
func (s *TagService) ListTags(ctx context.Context) ([]string, *response.BusinessError) {
	names, ok, err := s.cache.Get(ctx)
	if err != nil {
		zap.L().Warn("read tag cache failed", zap.Error(err))
	}
	if ok {
		return names, nil
	}

	names, err = s.repo.ListNames(ctx)
	if err != nil {
		zap.L().Error("list tags failed", zap.Error(err))
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询标签失败"),
			response.WithError(err),
		)
	}

	if err := s.cache.Set(ctx, names); err != nil {
		zap.L().Warn("write tag cache failed", zap.Error(err))
	}
	return names, nil
}

// Register 登记文章使用的标签，有新标签时清除缓存
func (s *TagService) Register(ctx context.Context, names []string) error {
	inserted, err := s.repo.FindOrCreate(ctx, names)
	if err != nil {
		return err
	}
	if inserted > 0 {
		if err := s.cache.Invalidate(ctx); err != nil {
			zap.L().Warn("invalidate tag cache failed", zap.Error(err))
		}
	}
	return nil
}
