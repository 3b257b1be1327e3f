package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fyyur/booking/internal/database"
)

// SchemaCmd returns the schema command.
func SchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the venues, artists and shows tables",
		Long: `Apply the embedded schema for DB_DRIVER.  Every statement uses
CREATE TABLE IF NOT EXISTS, so running it twice is harmless.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := database.ApplySchema(cmd.Context(), db, cfg.DBDriver)
			if err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
			fmt.Printf("%s %d statements applied (%s)\n", color.New(color.FgGreen).Sprint("OK"), n, cfg.DBDriver)
			return nil
		},
	}
}
