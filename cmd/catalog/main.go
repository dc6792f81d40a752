package main

import (
	"github.com/baseafricadao/catalog/internal/auth"
	"github.com/baseafricadao/catalog/internal/authorization"
	"github.com/baseafricadao/catalog/internal/catalog"
	"github.com/baseafricadao/catalog/internal/clock"
	"github.com/baseafricadao/catalog/internal/config"
	"github.com/baseafricadao/catalog/internal/lock"
	"github.com/baseafricadao/catalog/internal/migration"
	"github.com/baseafricadao/catalog/internal/moderation"
	"github.com/baseafricadao/catalog/internal/observability"
	"github.com/baseafricadao/catalog/internal/product"
	"github.com/baseafricadao/catalog/internal/seed"
	"github.com/baseafricadao/catalog/internal/server"
	"github.com/baseafricadao/catalog/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		lock.Module,
		migration.Module,

		// Functional domains
		product.Module,
		moderation.Module,
		catalog.Module,
		auth.Module,
		authorization.Module,
		seed.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
