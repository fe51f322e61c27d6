package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"productmgmt/internal/config"
	"productmgmt/internal/infra"
)

var (
	// Global flags
	dbURL   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "productctl",
	Short: "Administrative tasks for the product API database",
	Long: `productctl runs maintenance tasks against the database used by the
product API. Connection settings come from the same environment variables
(and .env file) as the server; --db overrides DATABASE_URL.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}
		infra.SetupLogger(level, "console", "development")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(migrateCmd, seedCmd)
}

// openDatabase connects using --db or the loaded configuration.
func openDatabase() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dsn := cfg.DatabaseURL
	if dbURL != "" {
		dsn = dbURL
	}
	return infra.NewDatabase(dsn, infra.PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1})
}
