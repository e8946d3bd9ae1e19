package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/2beens/gymcycle/internal/config"
	"github.com/2beens/gymcycle/internal/db"
	"github.com/2beens/gymcycle/internal/logging"
	"github.com/2beens/gymcycle/internal/spreadsheet"
)

// app holds what every command needs, filled in before a command runs.
type app struct {
	env        string
	configPath string
	storage    string
	logLevel   string
	secrets    config.Secrets

	// set by tests to skip the real backends
	storeOverride spreadsheet.AdminStore
	driveOptions  []option.ClientOption
}

// NewRootCommand creates the fitadmin root command
func NewRootCommand() *cobra.Command {
	a := &app{}
	return newRootCommand(a)
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitadmin",
		Short: "Admin tasks for the gymcycle spreadsheet",
		Long: `fitadmin prepares and maintains the gymcycle data store.
Secrets come from the environment: GYMCYCLE_SHEET_ID, GYMCYCLE_GOOGLE_SERVICE_ACCOUNT_JSON
and GYMCYCLE_POSTGRES_PASS when the postgres storage is used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.LoggerSetupParams{LogLevel: a.logLevel})
			a.secrets = config.SecretsFromEnv()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.env, "env", "development", "environment [prod | production | dev | development]")
	flags.StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file, used for postgres connection settings")
	flags.StringVar(&a.storage, "storage", config.StorageSheets, "storage to work on [sheets | postgres | memory]")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(newCheckEnvCommand(a))
	rootCmd.AddCommand(newSetupCommand(a))
	rootCmd.AddCommand(newMigrateCommand(a))
	rootCmd.AddCommand(newSetupLoveCommand(a))
	rootCmd.AddCommand(newSeedLoveCommand(a))
	rootCmd.AddCommand(newBackupCommand(a))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore returns the admin store for the selected storage and a func releasing it.
func (a *app) openStore(ctx context.Context) (spreadsheet.AdminStore, func(), error) {
	noop := func() {}
	if a.storeOverride != nil {
		return a.storeOverride, noop, nil
	}

	switch a.storage {
	case config.StorageSheets:
		if a.secrets.SheetID == "" {
			return nil, nil, fmt.Errorf("GYMCYCLE_SHEET_ID not set")
		}
		store, err := spreadsheet.NewGoogleStore(ctx, a.secrets.SheetID, []byte(a.secrets.GoogleServiceAccountJSON))
		if err != nil {
			return nil, nil, fmt.Errorf("new google sheets store: %w", err)
		}
		return store, noop, nil
	case config.StoragePostgres:
		pool, err := a.openDBPool(ctx)
		if err != nil {
			return nil, nil, err
		}
		store := spreadsheet.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		return store, pool.Close, nil
	case config.StorageMemory:
		log.Warnln("memory storage selected, changes are lost when the command exits")
		return spreadsheet.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage: %s", a.storage)
	}
}

func (a *app) openDBPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load(a.env, a.configPath)
	if err != nil {
		return nil, err
	}
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: a.secrets.PostgresPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
