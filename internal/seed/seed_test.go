package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	articleModel "terminal-terrace/medium/internal/model/article"
	userModel "terminal-terrace/medium/internal/model/user"
	"terminal-terrace/medium/internal/tag"
	"terminal-terrace/medium/internal/testutils"
)

func TestRun_Idempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, nil))
	require.NoError(t, Run(ctx, db, nil))

	var users []userModel.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "user", users[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("password")))

	var articles []articleModel.Article
	require.NoError(t, db.Order("slug").Find(&articles).Error)
	require.Len(t, articles, 2)
	assert.Equal(t, "article-one", articles[0].Slug)
	assert.Equal(t, articleModel.TagList{"tag-1", "tag-2"}, articles[0].TagList)
	assert.Equal(t, users[0].ID, articles[1].AuthorID)

	var tagNames []string
	require.NoError(t, db.Model(&articleModel.Tag{}).Order("name").Pluck("name", &tagNames).Error)
	assert.Equal(t, []string{"coffee-seed", "dragons-seed", "nestjs-seed", "tag-1", "tag-2", "tag-3", "tag-4"}, tagNames)
}

func TestRun_InvalidatesTagCache(t *testing.T) {
	db := testutils.SetupTestDB(t)
	client, mr := testutils.SetupTestRedis(t)
	ctx := context.Background()

	cache := tag.NewTagCache(client)
	require.NoError(t, cache.Set(ctx, []string{"stale"}))

	require.NoError(t, Run(ctx, db, cache))

	assert.False(t, mr.Exists("tags:all"))

	names, err := tag.NewTagService(tag.NewTagRepository(db), cache).ListTags(ctx)
	require.Nil(t, err)
	assert.Contains(t, names, "dragons-seed")
	assert.NotContains(t, names, "stale")
}
