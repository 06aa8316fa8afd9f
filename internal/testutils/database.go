package testutils

import (
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/medium/internal/model"
	dbPkg "terminal-terrace/medium/packages/database"
)

// SetupTestDB 默认使用独立的内存 sqlite 数据库；
// 设置 TEST_DATABASE_DSN 时改用 PostgreSQL，并在事务中运行以便回滚
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if dsn := os.Getenv("TEST_DATABASE_DSN"); dsn != "" {
		return setupPostgres(t, dsn)
	}

	db, err := dbPkg.InitGorm(&dbPkg.GormConfig{
		ServiceName: "medium-test",
		Driver:      dbPkg.DriverSQLite,
		Database:    ":memory:",
		LogLevel:    "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func setupPostgres(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	tx := db.Begin()
	t.Cleanup(func() {
		tx.Rollback()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return tx
}

// SetupTestRedis 启动进程内的 miniredis 并返回连接它的客户端
func SetupTestRedis(t *testing.T) (*dbPkg.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &dbPkg.RedisClient{Client: client}, mr
}
