package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyyur/booking/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Fyyur booking API",
		Long: `Fyyur lists venues and artists and books shows between them.
Configuration comes from the environment and an optional .env file.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SchemaCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
