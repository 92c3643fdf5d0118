package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/debugme/internal/config"
	"github.com/abhisek/debugme/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "debugme",
	Short: "Terminal debugging tutor",
	Long:  "DebugMe is a terminal app that teaches debugging through lessons, coding challenges and an AI tutor, and maps your skills to career paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DEBUGME_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file")

	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadFileConfig reads the TOML config named by --config, falling back
// to the default XDG path. A missing file yields the zero config.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then DEBUGME_DB, then the XDG default.
func resolveDBPath(cmd *cobra.Command, fileCfg config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fileCfg.DB.Path != nil && *fileCfg.DB.Path != "" {
		return *fileCfg.DB.Path, store.EnsureDir(*fileCfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore resolves configuration and opens the database.
func openStore(cmd *cobra.Command) (*store.Store, config.FileConfig, error) {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return nil, config.FileConfig{}, err
	}
	dbPath, err := resolveDBPath(cmd, fileCfg)
	if err != nil {
		return nil, config.FileConfig{}, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.FileConfig{}, err
	}
	return st, fileCfg, nil
}
