package main

import (
	"Engage/config"
	"Engage/dao/cache"
	"Engage/pkg/client"
	"Engage/pkg/database"
	"Engage/pkg/log"
	"Engage/pkg/server"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	log.SetDebug(cfg.Debug())
	if cfg.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "content engagement analytics api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider := InitServer(cfg)
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables and indexes",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := database.Migrate(db); err != nil {
						return err
					}
					// 表结构可能变了，旧的分类缓存作废
					storage := cache.NewCategoryStorage(client.NewRedisClient(cfg), cfg)
					if err := storage.Del(ctx.Context); err != nil {
						log.L.Warn("flush category cache failed", zap.Error(err))
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
