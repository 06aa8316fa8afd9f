package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/internal/model"
	"terminal-terrace/medium/packages/database"
)

const serviceName = "medium"

var (
	DB      *gorm.DB
	RedisDB *database.RedisClient
)

// InitDatabase 初始化关系数据库与（可选的）Redis
func InitDatabase() error {
	if err := initGorm(); err != nil {
		return err
	}
	initRedis()
	return nil
}

// Migrate 自动迁移数据库表
func Migrate() error {
	return model.InitTable(DB)
}

func initGorm() error {
	databaseConf := config.Conf.Database

	// 设置默认日志级别
	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	var err error
	DB, err = database.InitGorm(
		&database.GormConfig{
			ServiceName:     serviceName,
			Driver:          databaseConf.Driver,
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)
	return err
}

// initRedis Redis 不可用时降级为无缓存模式
func initRedis() {
	redisConf := config.Conf.Redis
	if redisConf.Host == "" {
		zap.L().Info("redis not configured, tag cache disabled")
		return
	}

	client, err := database.InitRedis(
		&database.RedisConfig{
			ServiceName: serviceName,
			Host:        redisConf.Host,
			Port:        redisConf.Port,
			Password:    redisConf.Password,
			DB:          redisConf.DB,
			PoolSize:    redisConf.PoolSize,
		},
	)
	if err != nil {
		zap.L().Warn("redis unavailable, tag cache disabled", zap.Error(err))
		return
	}
	RedisDB = client
}

// Close 关闭所有连接
func Close() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if RedisDB != nil {
		_ = RedisDB.Close()
	}
}
