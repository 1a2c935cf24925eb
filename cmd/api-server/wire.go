//go:build wireinject
// +build wireinject

package main

import (
	"PromptLib/config"
	"PromptLib/dao"
	"PromptLib/dao/cache"
	"PromptLib/handler"
	"PromptLib/pkg/client"
	"PromptLib/pkg/database"
	"PromptLib/pkg/llm"
	"PromptLib/pkg/server"
	"PromptLib/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		config.ProvideOssConfig,
		config.ProvideLLMConfig,
		config.ProvideJwtConfig,
		llm.NewPromptAnalyzer,
		wire.Bind(new(llm.IPromptAnalyzer), new(*llm.PromptAnalyzer)),
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Analyze), "*"),
		wire.Struct(new(handler.Gallery), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Api), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
