package main

import (
	"fmt"
	"os"

	"Quill/config"
	"Quill/pkg/database"
	"Quill/pkg/log"
	"Quill/pkg/server"
	"Quill/pkg/snowflake"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Quill social graph and interaction api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				EnvVars: []string{"QUILL_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx)
					if err != nil {
						return err
					}
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and unique indexes",
				Action: func(ctx *cli.Context) error {
					cfg, err := setup(ctx)
					if err != nil {
						return err
					}
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
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

// setup 读取配置并初始化日志级别与 id 生成节点
func setup(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	log.SetLevel(cfg.App.LogLevel)
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		return nil, err
	}
	return cfg, nil
}
