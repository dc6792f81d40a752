// Package seed bootstraps the initial admin account so a fresh deployment
// has someone who can moderate submissions.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	authdomain "github.com/baseafricadao/catalog/internal/auth/domain"
	"github.com/baseafricadao/catalog/internal/auth/password"
	"github.com/baseafricadao/catalog/internal/config"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(EnsureAdminUser),
)

func EnsureAdminUser(cfg config.Config, db *gorm.DB, genID *snowflake.Node, log *zap.Logger) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.SeedAdminEmail))
	if email == "" {
		return nil
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.Where("email = ?", email).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(cfg.SeedAdminPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user = authdomain.User{
			ID:           genID.Generate(),
			Email:        email,
			DisplayName:  "Catalog Admin",
			PasswordHash: &hashed,
			Role:         authdomain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		log.Info("seeded admin user", zap.String("email", email))
		return nil
	})
}
