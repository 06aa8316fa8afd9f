package article

import (
	"time"

	articleModel "terminal-terrace/medium/internal/model/article"
)

// CreateArticleRequest POST /articles 请求体
type CreateArticleRequest struct {
	Article CreateArticle `json:"article"`
}

type CreateArticle struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList" binding:"omitempty,dive,max=64,excludes=0x2C"`
}

// UpdateArticleRequest PUT /articles/:slug 请求体
// TagList 为 nil 表示未提供，保持原值；提供 [] 时清空
// 标签按逗号分隔存储，单个标签不能包含逗号
type UpdateArticleRequest struct {
	Article UpdateArticle `json:"article"`
}

type UpdateArticle struct {
	Title       *string   `json:"title" binding:"omitempty,max=255"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	TagList     *[]string `json:"tagList" binding:"omitempty,dive,max=64,excludes=0x2C"`
}

// ListArticlesQuery GET /articles 查询参数
type ListArticlesQuery struct {
	Author    string `form:"author"`
	Tag       string `form:"tag"`
	Favorited string `form:"favorited"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// ListLimits 分页默认值与上限
type ListLimits struct {
	Default int
	Max     int
}

// ArticlesResponse 列表与单篇文章共用的返回结构
type ArticlesResponse struct {
	Articles      []ArticleData `json:"articles"`
	ArticlesCount int64         `json:"articlesCount"`
}

type ArticleData struct {
	ID             uint       `json:"id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Body           string     `json:"body"`
	TagList        []string   `json:"tagList"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	FavoritesCount int        `json:"favoritesCount"`
	Author         AuthorData `json:"author"`
	// 仅列表接口返回
	IsFavorited *bool `json:"isFavorited,omitempty"`
}

type AuthorData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// DeleteResponse DELETE /articles/:slug 返回删除的行数
type DeleteResponse struct {
	Affected int64 `json:"affected"`
}

func toArticleData(a *articleModel.Article) ArticleData {
	tags := []string(a.TagList)
	if tags == nil {
		tags = []string{}
	}

	return ArticleData{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tags,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		FavoritesCount: a.FavoritesCount,
		Author: AuthorData{
			ID:       a.Author.ID,
			Username: a.Author.Username,
			Bio:      a.Author.Bio,
			Image:    a.Author.Image,
		},
	}
}

// singleArticleResponse 单篇文章同样以列表形式返回，不计算 isFavorited
func singleArticleResponse(a *articleModel.Article) ArticlesResponse {
	return ArticlesResponse{
		Articles:      []ArticleData{toArticleData(a)},
		ArticlesCount: 1,
	}
}
