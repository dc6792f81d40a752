package catalog

import (
	"github.com/baseafricadao/catalog/internal/catalog/artifact"
	"github.com/baseafricadao/catalog/internal/config"
	"github.com/baseafricadao/catalog/internal/lock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("catalog.service",
	fx.Provide(New),
	fx.Provide(provideArtifactStore),
)

func provideArtifactStore(cfg config.Config, locker *lock.Locker, log *zap.Logger) *artifact.Store {
	return artifact.NewStore(cfg.CatalogArtifactPath, locker, log)
}
