package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "surfaces",
		Short:         "Surfaces turns semantic data-surface markers into presentation classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to project file (default $SURFACES_CONFIG or ./surfaces.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newLookupCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newStackCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newPullCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
