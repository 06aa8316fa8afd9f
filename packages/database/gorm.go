package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GormConfig 关系型数据库配置
type GormConfig struct {
	ServiceName     string        // 服务名称，用于日志标识
	Driver          string        // postgres 或 sqlite
	Username        string        // 数据库用户名
	Password        string        // 数据库密码
	Host            string        // 数据库地址
	Port            int           // 数据库端口
	Database        string        // 数据库名称（sqlite 时为文件路径或 :memory:）
	SSLMode         bool          // 是否启用 SSL
	LogLevel        string        // 日志级别: silent, error, warn, info
	MaxIdleConns    int           // 最大空闲连接数
	MaxOpenConns    int           // 最大打开连接数
	ConnMaxLifetime time.Duration // 连接最大生命周期
}

// InitGorm 初始化数据库连接
func InitGorm(config *GormConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("database config is nil")
	}

	setDefaults(config)

	dialector, err := buildDialector(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         getLogger(config.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	zap.L().Info("database connected",
		zap.String("service", config.ServiceName),
		zap.String("driver", config.Driver))
	return db, nil
}

func setDefaults(c *GormConfig) {
	if c.ServiceName == "" {
		c.ServiceName = "unknown-service"
	}
	if c.Driver == "" {
		c.Driver = DriverPostgres
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 100
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = 1 * time.Hour
	}
	// 内存库每个连接都是独立的数据库，只能用一个连接
	if c.Driver == DriverSQLite && c.Database == ":memory:" {
		c.MaxOpenConns = 1
		c.ConnMaxLifetime = 0
	}
}

func buildDialector(c *GormConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		return postgres.Open(buildDSN(c)), nil
	case DriverSQLite:
		return sqlite.Open(c.Database), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// buildDSN 构建 PostgreSQL 连接字符串
func buildDSN(c *GormConfig) string {
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)
}

func getLogger(level string) logger.Interface {
	switch level {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "warn":
		return logger.Default.LogMode(logger.Warn)
	default:
		return logger.Default.LogMode(logger.Info)
	}
}
