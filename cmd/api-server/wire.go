//go:build wireinject
// +build wireinject

package main

import (
	"Quill/config"
	"Quill/dao"
	"Quill/handler"
	"Quill/pkg/client"
	"Quill/pkg/database"
	"Quill/pkg/server"
	"Quill/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		NewEventPublisher,
		server.NewGinEngine,

		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Bookmark), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
