// cmd/nodesim/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/pkg/logger"
)

func main() {
	// .env не обязателен
	_ = godotenv.Load()
	logger.InitWithOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nodesim",
		Short: "Headless node-defense simulation",
		Long: `nodesim runs the node-defense simulation core without a window.

It validates upgrade catalogs, previews what buying a node would change,
and runs a fixed number of ticks printing the resulting state.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "Catalog YAML/JSON file (default: embedded catalog)")
	rootCmd.PersistentFlags().String("config", "", "Simulation config YAML (default: embedded config)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newPreviewCmd(),
	)
	return rootCmd
}

// loadSession читает конфигурацию и каталог с учётом флагов.
// Флаг --catalog важнее поля catalog из конфигурации.
func loadSession(cmd *cobra.Command) (*config.SimConfig, *defs.Catalog, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	if catalogPath == "" {
		catalog, err := defs.DefaultCatalog()
		return cfg, catalog, err
	}
	catalog, err := defs.LoadCatalog(catalogPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, catalog, nil
}
