package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"library/src/cmd/lib/menucmd"
	"library/src/internal/config"
)

// envFile is loaded from the working directory when present.
const envFile = ".env"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lib",
		Short:         "Personal library manager (interactive book catalog)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), envFile)
			if err != nil {
				return err
			}
			return menucmd.Run(cmd, cfg)
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())
	return cmd
}

func execute() error {
	return newRootCmd().Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "lib:", err)
		os.Exit(1)
	}
}
