package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/imgtrans/internal/cli"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Load .env and set up logging once flags are parsed
	cobra.OnInitialize(func() {
		cli.InitEnvironment(flags)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cli.Run(cmd, args, flags, cli.DefaultServiceFactory())
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
