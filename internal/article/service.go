package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	articleModel "terminal-terrace/medium/internal/model/article"
	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/pkg"
	"terminal-terrace/medium/internal/user"
	"terminal-terrace/medium/packages/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TagRegistrar 登记文章使用到的标签
type TagRegistrar interface {
	Register(ctx context.Context, names []string) error
}

type ArticleService struct {
	repo   *ArticleRepository
	users  *user.UserRepository
	tags   TagRegistrar
	limits ListLimits
}

func NewArticleService(repo *ArticleRepository, users *user.UserRepository, tags TagRegistrar, limits ListLimits) *ArticleService {
	if limits.Default <= 0 {
		limits.Default = 20
	}
	if limits.Max < limits.Default {
		limits.Max = limits.Default
	}
	return &ArticleService{repo: repo, users: users, tags: tags, limits: limits}
}

// Create 创建文章，slug 由标题生成
func (s *ArticleService) Create(ctx context.Context, author *userModel.User, req CreateArticle) (ArticlesResponse, *response.BusinessError) {
	if bizErr := checkTags(req.TagList); bizErr != nil {
		return ArticlesResponse{}, bizErr
	}

	tags := articleModel.TagList(req.TagList)
	if tags == nil {
		tags = articleModel.TagList{}
	}

	a := &articleModel.Article{
		Slug:        pkg.GenerateSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		TagList:     tags,
		AuthorID:    author.ID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ArticlesResponse{}, response.NewBusinessError(
				response.WithErrorCode(response.Duplicate),
				response.WithErrorMessage("slug already exists"),
			)
		}
		return ArticlesResponse{}, internalError("文章创建失败", err)
	}

	s.registerTags(ctx, a.TagList)
	return singleArticleResponse(a), nil
}

// FindBySlug 获取单篇文章
func (s *ArticleService) FindBySlug(ctx context.Context, slug string) (ArticlesResponse, *response.BusinessError) {
	a, bizErr := s.findArticle(ctx, slug)
	if bizErr != nil {
		return ArticlesResponse{}, bizErr
	}
	return singleArticleResponse(a), nil
}

// Update 仅作者可修改；标题非空时重新生成 slug，即使标题未变
func (s *ArticleService) Update(ctx context.Context, slug string, userID uint, req UpdateArticle) (ArticlesResponse, *response.BusinessError) {
	if req.TagList != nil {
		if bizErr := checkTags(*req.TagList); bizErr != nil {
			return ArticlesResponse{}, bizErr
		}
	}

	a, bizErr := s.findOwnArticle(ctx, slug, userID)
	if bizErr != nil {
		return ArticlesResponse{}, bizErr
	}

	if req.Title != nil && *req.Title != "" {
		a.Title = *req.Title
		a.Slug = pkg.GenerateSlug(a.Title)
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Body != nil {
		a.Body = *req.Body
	}
	if req.TagList != nil {
		a.TagList = articleModel.TagList(*req.TagList)
		if a.TagList == nil {
			a.TagList = articleModel.TagList{}
		}
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return ArticlesResponse{}, internalError("文章更新失败", err)
	}

	if req.TagList != nil {
		s.registerTags(ctx, a.TagList)
	}
	return singleArticleResponse(a), nil
}

// Delete 仅作者可删除
func (s *ArticleService) Delete(ctx context.Context, slug string, userID uint) (DeleteResponse, *response.BusinessError) {
	a, bizErr := s.findOwnArticle(ctx, slug, userID)
	if bizErr != nil {
		return DeleteResponse{}, bizErr
	}

	affected, err := s.repo.Delete(ctx, a.ID)
	if err != nil {
		return DeleteResponse{}, internalError("文章删除失败", err)
	}
	return DeleteResponse{Affected: affected}, nil
}

func (s *ArticleService) findArticle(ctx context.Context, slug string) (*articleModel.Article, *response.BusinessError) {
	a, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, internalError("查询文章失败", err)
	}
	if a == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("article not found"),
		)
	}
	return a, nil
}

func (s *ArticleService) findOwnArticle(ctx context.Context, slug string, userID uint) (*articleModel.Article, *response.BusinessError) {
	a, bizErr := s.findArticle(ctx, slug)
	if bizErr != nil {
		return nil, bizErr
	}
	if a.AuthorID != userID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("you are not the author of this article"),
		)
	}
	return a, nil
}

// registerTags 标签目录登记失败不影响文章本身
func (s *ArticleService) registerTags(ctx context.Context, tags articleModel.TagList) {
	if s.tags == nil || len(tags) == 0 {
		return
	}
	if err := s.tags.Register(ctx, tags); err != nil {
		zap.L().Warn("register tags failed", zap.Strings("tags", tags), zap.Error(err))
	}
}

func internalError(msg string, err error) *response.BusinessError {
	zap.L().Error(msg, zap.Error(err))
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage(msg),
		response.WithError(err),
	)
}

// checkTags 标签以逗号分隔落库，含逗号的标签读回时会被拆开
func checkTags(tags []string) *response.BusinessError {
	for _, t := range tags {
		if strings.Contains(t, ",") {
			return response.NewBusinessError(
				response.WithErrorCode(response.BadRequest),
				response.WithErrorMessage(fmt.Sprintf("tag %q must not contain \",\"", t)),
			)
		}
	}
	return nil
}
