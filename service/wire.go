package service

import (
	"PromptLib/dao"
	"PromptLib/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAnalyzerClient,
	wire.Bind(new(IAnalyzerClient), new(*AnalyzerClient)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),

	wire.Bind(new(PromptStore), new(*dao.PromptDAO)),
	wire.Bind(new(TagStore), new(*dao.TagDAO)),
	wire.Bind(new(AdminStore), new(*dao.AdminDAO)),
	wire.Bind(new(SessionStore), new(*cache.SessionStorage)),

	wire.Struct(new(PromptService), "*"),
	wire.Bind(new(IPromptService), new(*PromptService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(GalleryService), "*"),
	wire.Bind(new(IGalleryService), new(*GalleryService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)
