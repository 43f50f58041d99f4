package cmd

import (
	"fmt"
	"os"

	"opsboard/internal/app/server/config"
	"opsboard/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "opsboard",
	Short: "Opsboard - workspace server for projects, orders, clients and staff",
	Long: `Opsboard serves a per-owner workspace over HTTP: projects, purchase
orders, clients, employees and documents, with deadline alerts derived
from the stored data.

Configuration comes from the environment (or a .env file): DATABASE_URI,
MIGRATIONS_PATH, RUN_ADDRESS, APP_ENV.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg = config.MustLoad()
		log = logger.New(cfg.Env)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
