package main

import (
	"fmt"

	"github.com/burakkgenccc/package-express/internal/application/port"
	"github.com/burakkgenccc/package-express/internal/interfaces/console"
	"github.com/spf13/cobra"
)

// newRootCmd builds the shipcalc command tree.
// The root command runs a single quote session; it exits successfully
// whatever the session outcome, since every outcome is reported on the console.
func newRootCmd(log port.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "shipcalc",
		Short: "Package Express shipping calculator",
		Long: `Package Express shipping calculator.

Prompts for a package's weight, width, height and length, checks them
against the shipping limits (weight at most 50, width + height + length
at most 50) and prints the estimated shipping cost.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), log)
			result := session.Run(cmd.Context())

			log.Info("Session finished",
				"session_id", result.SessionID,
				"status", string(result.Status),
			)
			return nil
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shipcalc version %s\n", version)
		},
	})

	return root
}
