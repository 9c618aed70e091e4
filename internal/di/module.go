package di

import (
	"github.com/merchline/merchline/internal/app"
	"github.com/merchline/merchline/internal/cache"
	"github.com/merchline/merchline/internal/config"
	"github.com/merchline/merchline/internal/logger"
	"github.com/merchline/merchline/internal/pkg/auth"
	"github.com/merchline/merchline/internal/server/http/handlers"
	"github.com/merchline/merchline/internal/server/http/router"
	"github.com/merchline/merchline/internal/storage/postgres"
	"github.com/merchline/merchline/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
