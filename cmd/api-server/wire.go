//go:build wireinject
// +build wireinject

package main

import (
	"notalx/config"
	"notalx/dao"
	"notalx/dao/cache"
	"notalx/handler"
	"notalx/middleware"
	"notalx/pkg/database"
	"notalx/pkg/llm"
	"notalx/pkg/mail"
	"notalx/pkg/server"
	"notalx/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		cache.NewRedisClient,
		cache.ProviderSet,
		dao.ProviderSet,

		mail.NewMailer,
		llm.NewExtractor,

		service.ProviderSet,

		wire.Struct(new(middleware.Guard), "*"),

		wire.Struct(new(handler.Otp), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Collaborator), "*"),
		wire.Struct(new(handler.Task), "*"),
		wire.Struct(new(handler.Notification), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
