package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/vietanh2810/events-api/cmd/app"
	"github.com/vietanh2810/events-api/internal/config"
	"github.com/vietanh2810/events-api/internal/logger"
	"github.com/vietanh2810/events-api/internal/repository"
	"github.com/vietanh2810/events-api/internal/repository/dao"
	"github.com/vietanh2810/events-api/internal/service"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "eventctl",
		Short: "Administer events, persons and participants",
		Long: `eventctl runs the staff console operations from a terminal.

It reads the same configuration as the API server and talks to the
database directly, so it works while the server is down.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", app.ConfigPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(personsCmd)
	rootCmd.AddCommand(participantsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createSuperuserCmd)
}

type services struct {
	db    *gorm.DB
	admin *service.AdminService
	auth  *service.AuthService
}

func openServices() (*services, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, logLevel); err != nil {
		return nil, fmt.Errorf("logger.Init -> %w", err)
	}

	db, err := app.OpenDatabase(conf)
	if err != nil {
		return nil, fmt.Errorf("app.OpenDatabase -> %w", err)
	}

	return newServices(db, conf.API.AdminPageSize), nil
}

func newServices(db *gorm.DB, pageSize int) *services {
	personRepo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))

	return &services{
		db:    db,
		admin: service.NewAdminService(eventRepo, participantRepo, personRepo, pageSize),
		auth:  service.NewAuthService(personRepo),
	}
}
