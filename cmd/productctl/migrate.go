package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"productmgmt/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the products and categories tables",
	Long: `Create or update the products and categories tables and apply the
schema patches (price and quantity checks, price index). Safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := infra.RunMigrations(db); err != nil {
			return err
		}
		log.Info().Msg("schema up to date")
		return nil
	},
}
