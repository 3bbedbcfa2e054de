// Package cli provides the command-line interface for termolog.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/brunocadim/termolog/internal/config"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Global config, logger and store, opened by PersistentPreRunE.
	cfg     config.Config
	logger  *slog.Logger
	logDone func() error
	slot    *journal.SQLiteSlot
	store   *journal.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "termolog",
	Short: "Personal emotional journal",
	Long: `Termolog is a personal emotional journal: log how you feel on one of
six emotion scales with situational context, then read the data back as
history, streaks, insights, a monthly calendar, or portable exports.

All data lives in a local SQLite file under ~/.termolog — nothing
leaves the machine unless you export it.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		logger, logDone = config.SetupLogger(cfg.LogFile, cfg.LogLevel)

		var err error
		slot, err = journal.OpenSQLiteSlot(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open journal database: %w", err)
		}

		storeCfg := journal.DefaultConfig()
		storeCfg.SoftLimitBytes = cfg.SoftLimitBytes
		storeCfg.EvictionKeep = cfg.EvictionKeep
		store = journal.NewStore(slot, storeCfg, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if slot != nil {
			if err := slot.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
		if logDone != nil {
			_ = logDone()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(serveCmd)
}
