package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	apiURL     string
	verbose    bool
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "yatra",
		Short:         "Yatra helps you discover and plan trips across India",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// On a terminal, no subcommand means the interactive app
			if len(args) == 0 && isTerminal(cmd.OutOrStdout()) {
				return runTUI(cmd, flags, tuiOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/yatra/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Override the travel API base URL")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme: light or dark")

	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newChatCmd(flags))
	cmd.AddCommand(newPlanCmd(flags))
	cmd.AddCommand(newStatesCmd(flags))
	cmd.AddCommand(newPostsCmd(flags))
	cmd.AddCommand(newMapCmd(flags))
	cmd.AddCommand(newProfileCmd(flags))
	cmd.AddCommand(newAuthCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
