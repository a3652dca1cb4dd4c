package commands

import (
	"fmt"
	"os"

	"blogly/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFiles []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blogly",
	Short: "Blogly - users, posts and tags on a small blog",
	Long: `Blogly serves HTML pages for managing users, their posts and the tags
attached to those posts.

Settings are read from the environment, optionally loaded from .env files.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Env files to load before reading the environment (default .env)")
}

// openDB loads the configuration and opens a migrated database.
func openDB() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, nil
}

// describeDB names the database target without credentials.
func describeDB(cfg config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return fmt.Sprintf("sqlite %s", cfg.Path)
	}
	return fmt.Sprintf("postgres %s@%s:%s/%s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
}
