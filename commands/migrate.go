package commands

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := openDB()
		if err != nil {
			return err
		}

		Success("Tables are up to date")
		Muted("  %s", describeDB(cfg.Database))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
