package testutils

import (
	"testing"

	"terminal-terrace/medium/config"
)

// SetupTestConfig 安装测试用全局配置，测试结束后恢复
func SetupTestConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	prev := config.Conf
	config.Conf = &config.AppConfig{
		Server:  config.ServerConfig{Mode: "test", FrontendURL: "http://localhost:5173"},
		JWT:     config.JWTConfig{Secret: "test-secret-key", ExpireTime: 24},
		Article: config.ArticleConfig{DefaultLimit: 20, MaxLimit: 100},
		Log:     config.LogConfig{Level: "error", Format: "json", Output: "stdout"},
	}
	t.Cleanup(func() { config.Conf = prev })

	return config.Conf
}
