package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	articleModel "terminal-terrace/medium/internal/model/article"
	"terminal-terrace/medium/internal/testutils"
	"terminal-terrace/medium/packages/response"
)

func favoriteEdges(t *testing.T, db *gorm.DB, articleID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&articleModel.Favorite{}).Where("article_id = ?", articleID).Count(&n).Error)
	return n
}

func TestArticleService_AddFavoriteIdempotent(t *testing.T) {
	s, db := newTestService(t)
	ctx := context.Background()
	jake := testutils.CreateTestUser(db)
	fan := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, jake)

	resp, bizErr := s.AddFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 1, resp.Articles[0].FavoritesCount)

	resp, bizErr = s.AddFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 1, resp.Articles[0].FavoritesCount)
	assert.Equal(t, int64(1), favoriteEdges(t, db, a.ID))

	resp, bizErr = s.AddFavorite(ctx, a.Slug, jake.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 2, resp.Articles[0].FavoritesCount)
	assert.Equal(t, int64(2), favoriteEdges(t, db, a.ID))
}

func TestArticleService_RemoveFavoriteIdempotent(t *testing.T) {
	s, db := newTestService(t)
	ctx := context.Background()
	jake := testutils.CreateTestUser(db)
	fan := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, jake)

	resp, bizErr := s.RemoveFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 0, resp.Articles[0].FavoritesCount, "removing a missing favorite is a no-op")

	_, bizErr = s.AddFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)

	resp, bizErr = s.RemoveFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 0, resp.Articles[0].FavoritesCount)

	resp, bizErr = s.RemoveFavorite(ctx, a.Slug, fan.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, 0, resp.Articles[0].FavoritesCount)
	assert.Zero(t, favoriteEdges(t, db, a.ID))
}

func TestArticleService_FavoriteMissingArticle(t *testing.T) {
	s, db := newTestService(t)
	ctx := context.Background()
	fan := testutils.CreateTestUser(db)

	_, bizErr := s.AddFavorite(ctx, "missing", fan.ID)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)

	_, bizErr = s.RemoveFavorite(ctx, "missing", fan.ID)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_FavoritesCountMatchesEdges(t *testing.T) {
	s, db := newTestService(t)
	ctx := context.Background()
	jake := testutils.CreateTestUser(db)
	a := testutils.CreateTestArticle(db, jake)

	fans := make([]uint, 0, 5)
	for i := 0; i < 5; i++ {
		fans = append(fans, testutils.CreateTestUser(db).ID)
	}
	for _, id := range fans {
		_, bizErr := s.AddFavorite(ctx, a.Slug, id)
		require.Nil(t, bizErr)
	}
	for _, id := range fans[:2] {
		_, bizErr := s.RemoveFavorite(ctx, a.Slug, id)
		require.Nil(t, bizErr)
	}

	resp, bizErr := s.FindBySlug(ctx, a.Slug)
	require.Nil(t, bizErr)
	assert.Equal(t, int64(resp.Articles[0].FavoritesCount), favoriteEdges(t, db, a.ID))
	assert.Equal(t, 3, resp.Articles[0].FavoritesCount)
}
