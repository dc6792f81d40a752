package auth

import (
	"github.com/baseafricadao/catalog/internal/auth/repository"
	"github.com/baseafricadao/catalog/internal/auth/service"
	"github.com/baseafricadao/catalog/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.ProvideUserRepository),
	fx.Provide(repository.ProvideSessionRepository),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
