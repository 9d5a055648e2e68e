package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietanh2810/events-api/internal/repository/dao"
)

var migrateDrop bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices()
		if err != nil {
			return err
		}

		if migrateDrop {
			if err := dao.DropTables(svcs.db); err != nil {
				return fmt.Errorf("dao.DropTables -> %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "tables dropped")
		}

		if err := dao.InitTables(svcs.db); err != nil {
			return fmt.Errorf("dao.InitTables -> %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "tables migrated")

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDrop, "drop", false, "drop every table first (destroys all data)")
}
