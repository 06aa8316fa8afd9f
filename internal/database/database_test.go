package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/medium/config"
	articleModel "terminal-terrace/medium/internal/model/article"
)

func TestInitDatabase_SQLiteWithoutRedis(t *testing.T) {
	prev := config.Conf
	config.Conf = &config.AppConfig{
		Database: config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", LogLevel: "silent"},
	}
	t.Cleanup(func() {
		Close()
		DB, RedisDB = nil, nil
		config.Conf = prev
	})

	require.NoError(t, InitDatabase())
	assert.NotNil(t, DB)
	assert.Nil(t, RedisDB, "empty redis host disables the cache")

	require.NoError(t, Migrate())
	assert.True(t, DB.Migrator().HasTable(&articleModel.Article{}))
	assert.True(t, DB.Migrator().HasTable(&articleModel.Tag{}))
}

func TestInitDatabase_UnreachableRedisDegrades(t *testing.T) {
	prev := config.Conf
	config.Conf = &config.AppConfig{
		Database: config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", LogLevel: "silent"},
		Redis:    config.RedisConfig{Host: "127.0.0.1", Port: 1},
	}
	t.Cleanup(func() {
		Close()
		DB, RedisDB = nil, nil
		config.Conf = prev
	})

	require.NoError(t, InitDatabase())
	assert.Nil(t, RedisDB)
}
