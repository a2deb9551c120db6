//go:build wireinject
// +build wireinject

package main

import (
	"Engage/config"
	"Engage/dao"
	"Engage/handler"
	"Engage/pkg/client"
	"Engage/pkg/database"
	"Engage/pkg/server"
	"Engage/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.Content), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
