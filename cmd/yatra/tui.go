package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
	"github.com/alexisbeaulieu97/yatra/internal/tui"
	"github.com/alexisbeaulieu97/yatra/internal/tui/screens"
)

type tuiOptions struct {
	login bool
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	opts := tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive app",
		Long:  `Launch the full screen travel app: destinations, the social feed, the map, the travel assistant and your profile.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.login, "login", false, "Start on the login screen")

	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags, opts tuiOptions) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.CommandLogger("tui")
	log.WithFields(map[string]any{"api": app.API.BaseURL(), "theme": app.Config.Theme}).Info("launching app")

	start := screens.Route{Name: screens.RouteTabs}
	if opts.login {
		start = screens.Route{Name: screens.RouteLogin}
	}

	deps := screens.Deps{
		Theme:      theme.New(theme.ParseMode(app.Config.Theme)),
		API:        app.API,
		Log:        app.Logger,
		ReplyDelay: app.Config.Chat.ReplyDelay,
	}

	p := tea.NewProgram(tui.NewModel(deps, start), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "app execution failed")
		return fmt.Errorf("failed to run app: %w", err)
	}

	log.Info("app closed")
	return nil
}
