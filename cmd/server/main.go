// @title Medium API
// @version 1.0
// @description 博客后端：用户、文章、标签、关注与收藏
// @BasePath /api
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description 格式为 "Token <jwt>"
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"terminal-terrace/medium/config"
	"terminal-terrace/medium/internal/database"
	grpcserver "terminal-terrace/medium/internal/grpc"
	"terminal-terrace/medium/internal/logger"
	"terminal-terrace/medium/internal/route"
	"terminal-terrace/medium/internal/seed"
	"terminal-terrace/medium/internal/tag"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.Command{
		Name:  "medium",
		Usage: "Medium-style blog backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config file",
				Value:   "config.yaml",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP (and optional gRPC) server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Create or update database tables",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "Insert development seed data",
				Action: seedData,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap 加载配置、初始化日志与数据库，返回的函数负责释放资源
func bootstrap(cmd *cli.Command) (func(), error) {
	if err := config.Load(cmd.String("config")); err != nil {
		return nil, err
	}

	syncLogger, err := logger.Setup(config.Conf.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if err := database.InitDatabase(); err != nil {
		syncLogger()
		return nil, fmt.Errorf("init database: %w", err)
	}

	return func() {
		database.Close()
		syncLogger()
	}, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	gin.SetMode(config.Conf.Server.Mode)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port),
		Handler:      route.SetupRouter(database.DB, database.RedisDB),
		ReadTimeout:  config.Conf.Server.ReadTimeout,
		WriteTimeout: config.Conf.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	var grpcSrv *grpcserver.Server
	if config.Conf.GRPC.Port != 0 {
		grpcSrv, err = grpcserver.NewServer(config.Conf.GRPC.Port, config.Conf.JWT.Secret, zap.L())
		if err != nil {
			return err
		}
		go func() {
			zap.L().Info("grpc server listening", zap.String("addr", grpcSrv.GetAddr()))
			if err := grpcSrv.Start(); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	go func() {
		zap.L().Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		zap.L().Info("shutting down")
	case err = <-errCh:
		zap.L().Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		zap.L().Error("http shutdown failed", zap.Error(shutdownErr))
	}
	if grpcSrv != nil {
		grpcSrv.Stop()
	}

	return err
}

func migrate(_ context.Context, cmd *cli.Command) error {
	cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	zap.L().Info("migration finished")
	return nil
}

func seedData(ctx context.Context, cmd *cli.Command) error {
	cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return seed.Run(ctx, database.DB, tag.NewTagCache(database.RedisDB))
}
