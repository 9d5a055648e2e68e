package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/events-api/internal/api"
	"github.com/vietanh2810/events-api/internal/config"
	"github.com/vietanh2810/events-api/internal/db"
	"github.com/vietanh2810/events-api/internal/logger"
	"github.com/vietanh2810/events-api/internal/repository/dao"
)

const ConfigPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	err = config.Watch(ConfigPath, func(updated *config.AppConfig) {
		if err := logger.SetLevel(updated.API.LogLevel); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.Stringer("log_level", logger.Level()))
	}, func(err error) {
		zap.L().Warn("failed to reload config", zap.Error(err))
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	postgresDB, err := OpenDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// OpenDatabase prefers DATABASE_URL over the postgres section of conf.
func OpenDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	return db.OpenPostgres(conf.Postgres)
}
