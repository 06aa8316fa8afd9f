package article

import (
	"context"

	"terminal-terrace/medium/packages/response"
)

// ListArticles 按作者、标签、收藏者过滤文章列表
// articlesCount 为过滤后、分页前的总数；author 或 favorited 对应的用户不存在时返回空列表
func (s *ArticleService) ListArticles(ctx context.Context, viewerID uint, q ListArticlesQuery) (ArticlesResponse, *response.BusinessError) {
	empty := ArticlesResponse{Articles: []ArticleData{}, ArticlesCount: 0}

	filter := ArticleFilter{
		Tag:    q.Tag,
		Limit:  s.normalizeLimit(q.Limit),
		Offset: max(q.Offset, 0),
	}

	if q.Author != "" {
		author, err := s.users.FindByUsername(ctx, q.Author)
		if err != nil {
			return ArticlesResponse{}, internalError("查询作者失败", err)
		}
		if author == nil {
			return empty, nil
		}
		filter.AuthorID = &author.ID
	}

	if q.Favorited != "" {
		favoritedBy, err := s.users.FindByUsername(ctx, q.Favorited)
		if err != nil {
			return ArticlesResponse{}, internalError("查询用户失败", err)
		}
		if favoritedBy == nil {
			return empty, nil
		}
		filter.FavoritedByID = &favoritedBy.ID
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ArticlesResponse{}, internalError("查询文章列表失败", err)
	}

	// isFavorited 始终相对于当前访问者，与 favorited 过滤条件无关
	ids := make([]uint, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	favorited, err := s.repo.FavoritedIDs(ctx, viewerID, ids)
	if err != nil {
		return ArticlesResponse{}, internalError("查询收藏失败", err)
	}

	data := make([]ArticleData, 0, len(articles))
	for i := range articles {
		item := toArticleData(&articles[i])
		_, ok := favorited[articles[i].ID]
		item.IsFavorited = &ok
		data = append(data, item)
	}

	return ArticlesResponse{Articles: data, ArticlesCount: total}, nil
}

func (s *ArticleService) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.limits.Default
	}
	return min(limit, s.limits.Max)
}
