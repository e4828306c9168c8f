package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recordkit/recordkit/internal/domain/orders"
	"github.com/recordkit/recordkit/internal/domain/users"
	"github.com/recordkit/recordkit/internal/infrastructure/persistence"
	"github.com/recordkit/recordkit/internal/pkg/config"
	"github.com/recordkit/recordkit/internal/pkg/logger"
	"github.com/recordkit/recordkit/internal/record"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupFactory builds the shared record factory for a command invocation:
// configuration, logger, database connection, schema migration and domain
// registration.
func setupFactory(cmd *cobra.Command) (*record.Factory, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read config flag: %w", err)
	}

	cfg, err := config.LoadAppConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}

	factory, err := record.NewFactory(persistence.NewGormConn(db), log,
		record.WithModelNaming(record.Convention{Prefix: cfg.Record.ModelPrefix, Postfix: cfg.Record.ModelPostfix}),
		record.WithDAONaming(record.Convention{Prefix: cfg.Record.DaoPrefix, Postfix: cfg.Record.DaoPostfix}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create factory: %w", err)
	}

	if err := users.Register(factory); err != nil {
		return nil, fmt.Errorf("failed to register user types: %w", err)
	}
	if err := orders.Register(factory); err != nil {
		return nil, fmt.Errorf("failed to register order types: %w", err)
	}

	return factory, nil
}
