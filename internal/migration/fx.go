package migration

import (
	authdomain "github.com/baseafricadao/catalog/internal/auth/domain"
	"github.com/baseafricadao/catalog/internal/config"
	productdomain "github.com/baseafricadao/catalog/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run applies versioned SQL migrations on postgres; sqlite (local dev and
// tests) relies on gorm AutoMigrate instead since golang-migrate's sqlite
// drivers require cgo.
func Run(cfg config.Config, db *gorm.DB, log *zap.Logger) error {
	switch cfg.DBType {
	case "postgres":
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
	default:
		if err := db.AutoMigrate(
			&productdomain.Product{},
			&authdomain.User{},
			&authdomain.Session{},
		); err != nil {
			return err
		}
	}

	log.Info("database schema up to date", zap.String("db_type", cfg.DBType))
	return nil
}
