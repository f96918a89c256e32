// Root command for the rolodex CLI.
package main

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/rolodex/internal/bot"
	"github.com/mesh-intelligence/rolodex/internal/config"
	"github.com/mesh-intelligence/rolodex/internal/jsonfile"
	"github.com/mesh-intelligence/rolodex/internal/logger"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex is a command-line contact manager",
	Long: `Rolodex is a command-line contact manager. Running it without a
subcommand starts an interactive session over the stored address book;
contacts, phone numbers, and birthdays are persisted between runs.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

// runSession wires configuration, logging, and storage together and
// runs the interactive session until close/exit or end of input.
func runSession(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("session_id", uuid.NewString()))

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	storeCfg := book.Config{Backend: cfg.Backend, DataDir: dataDir}
	if err := storeCfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	store, err := openStore(storeCfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	contacts, err := store.Load()
	if err != nil {
		// A corrupt snapshot must not lock the user out.
		log.Warn("loading address book failed, starting empty", zap.Error(err))
		contacts = book.NewAddressBook()
	}
	log.Debug("address book loaded",
		zap.String("backend", storeCfg.Backend),
		zap.String("data_dir", dataDir),
		zap.Int("contacts", contacts.Len()))

	session := bot.New(contacts, store, clock.New(), log, cmd.InOrStdin(), cmd.OutOrStdout())
	return multierr.Append(session.Run(), store.Close())
}

// openStore creates the storage backend named by the validated config.
func openStore(cfg book.Config) (book.Store, error) {
	switch cfg.Backend {
	case book.BackendSQLite:
		return sqlite.Open(cfg.DataDir)
	case book.BackendJSONL:
		return jsonfile.Open(cfg.DataDir)
	default:
		return nil, fmt.Errorf("%w: %q", book.ErrBackendUnknown, cfg.Backend)
	}
}
