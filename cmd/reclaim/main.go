package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/reclaimhq/reclaim/internal/config"
	"github.com/reclaimhq/reclaim/internal/logger"
	"github.com/reclaimhq/reclaim/internal/migration"
	"github.com/reclaimhq/reclaim/internal/server"
	"github.com/reclaimhq/reclaim/internal/testdrive"
	"github.com/reclaimhq/reclaim/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(newSnowflakeNode),
		logger.Module,
		db.Module,
		migration.Module,
		server.Module,
		testdrive.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
