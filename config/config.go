// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	GRPC     GRPCConfig     `koanf:"grpc"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Article  ArticleConfig  `koanf:"article"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	FrontendURL  string        `koanf:"frontend_url"`
}

// GRPCConfig 端口为 0 时不启动 gRPC
type GRPCConfig struct {
	Port int `koanf:"port"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // postgres, sqlite
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

// RedisConfig host 为空时不使用缓存
type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
	Output string `koanf:"output"` // stdout, file
	Path   string `koanf:"path"`   // 日志文件路径
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

// ArticleConfig 文章列表分页限制
type ArticleConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if envErr := godotenv.Load(); envErr != nil && !os.IsNotExist(envErr) {
			log.Printf("warning: cannot load .env: %v", envErr)
		}

		k = koanf.New(".")
		err = load(k, configPath)
	})

	return err
}

func load(k *koanf.Koanf, configPath string) error {
	// 配置文件可选，缺省时全部走默认值和环境变量
	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return fmt.Errorf("load config file: %w", err)
			}
		}
	}

	// APP_DATABASE_HOST -> database.host
	if err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "APP_")), "_", ".", 1)
	}), nil); err != nil {
		log.Printf("load env failed: %v", err)
	}

	loadCustomEnvVars(k)

	conf := &AppConfig{}
	if err := k.Unmarshal("", conf); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	conf.Server.ReadTimeout = conf.Server.ReadTimeout * time.Second
	conf.Server.WriteTimeout = conf.Server.WriteTimeout * time.Second
	applyDefaults(conf)

	if err := validateConfig(conf); err != nil {
		return err
	}

	Conf = conf
	return nil
}

// loadCustomEnvVars 加载自定义环境变量名（简化命名）
func loadCustomEnvVars(k *koanf.Koanf) {
	pairs := map[string]string{
		"PORT":            "server.port",
		"FRONTEND_URL":    "server.frontend_url",
		"GRPC_PORT":       "grpc.port",
		"DB_DRIVER":       "database.driver",
		"DB_HOST":         "database.host",
		"DB_PORT":         "database.port",
		"DB_USERNAME":     "database.username",
		"DB_PASSWORD":     "database.password",
		"DB_NAME":         "database.database",
		"REDIS_HOST":      "redis.host",
		"REDIS_PORT":      "redis.port",
		"REDIS_PASSWORD":  "redis.password",
		"JWT_SECRET":      "jwt.secret",
		"JWT_EXPIRE_TIME": "jwt.expire_time",
		"LOG_LEVEL":       "log.level",
	}
	for envKey, confKey := range pairs {
		if v := os.Getenv(envKey); v != "" {
			k.Set(confKey, v)
		}
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		k.Set("database.sslmode", v == "true")
	}
}

func applyDefaults(conf *AppConfig) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 3000
	}
	if conf.Server.Mode == "" {
		conf.Server.Mode = "debug"
	}
	if conf.Server.ReadTimeout == 0 {
		conf.Server.ReadTimeout = 15 * time.Second
	}
	if conf.Server.WriteTimeout == 0 {
		conf.Server.WriteTimeout = 15 * time.Second
	}
	if conf.Server.FrontendURL == "" {
		conf.Server.FrontendURL = "http://localhost:5173"
	}
	if conf.Database.Driver == "" {
		conf.Database.Driver = "postgres"
	}
	if conf.JWT.ExpireTime == 0 {
		conf.JWT.ExpireTime = 72
	}
	if conf.Log.Level == "" {
		conf.Log.Level = "info"
	}
	if conf.Log.Format == "" {
		conf.Log.Format = "json"
	}
	if conf.Log.Output == "" {
		conf.Log.Output = "stdout"
	}
	if conf.Article.DefaultLimit <= 0 {
		conf.Article.DefaultLimit = 20
	}
	if conf.Article.MaxLimit <= 0 {
		conf.Article.MaxLimit = 100
	}
}

// validateConfig 验证配置的有效性
func validateConfig(conf *AppConfig) error {
	if conf.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is empty, please set JWT_SECRET")
	}

	switch conf.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database.driver %q", conf.Database.Driver)
	}

	if conf.Database.Driver == "postgres" && conf.Database.Password == "" {
		log.Println("warning: database.password is empty, please set DB_PASSWORD")
	}

	if conf.Log.Output == "file" && conf.Log.Path == "" {
		return fmt.Errorf("log.path is required when log.output is file")
	}

	return nil
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("load config failed: %v", err)
	}
}
