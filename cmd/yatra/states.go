package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/model"
)

type statesOptions struct {
	remote bool
}

func newStatesCmd(flags *rootFlags) *cobra.Command {
	opts := &statesOptions{}

	cmd := &cobra.Command{
		Use:   "states",
		Short: "Browse destinations",
	}
	cmd.PersistentFlags().BoolVar(&opts.remote, "remote", false, "Read from the travel API instead of the bundled data")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.remote {
				return remoteCall(cmd, flags, "states list", func(app *AppContext) (json.RawMessage, error) {
					return app.API.States.List(cmd.Context())
				})
			}
			rows := make([][]any, 0)
			for _, s := range fixtures.States() {
				rows = append(rows, []any{s.ID, s.Name, s.BestTime, s.Budget})
			}
			return table(cmd.OutOrStdout(), "ID\tNAME\tBEST TIME\tBUDGET", rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if opts.remote {
				return remoteCall(cmd, flags, "states show", func(app *AppContext) (json.RawMessage, error) {
					return app.API.States.Get(cmd.Context(), id)
				})
			}
			state, ok := fixtures.StateByID(id)
			if !ok {
				return newCommandError("show state", fmt.Sprintf("looking up %q", id), errors.New("State not found"), "Run 'yatra states list' to see available destinations.")
			}
			renderState(cmd, state)
			return nil
		},
	})

	return cmd
}

func renderState(cmd *cobra.Command, s model.State) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", s.Name)
	fmt.Fprintf(out, "Best time:     %s\n", s.BestTime)
	fmt.Fprintf(out, "Budget:        %s\n", s.Budget)
	fmt.Fprintf(out, "Culture:       %s\n", s.Culture)
	fmt.Fprintf(out, "Festivals:     %s\n", s.Festivals)
	fmt.Fprintf(out, "Famous places: %s\n", s.FamousPlaces)

	fmt.Fprintln(out, "\nTourist attractions:")
	for _, a := range s.TouristAttractions {
		fmt.Fprintf(out, "  - %s: %s\n", a.Name, a.Description)
	}
	fmt.Fprintln(out, "\nRestaurants:")
	for _, r := range s.Restaurants {
		fmt.Fprintf(out, "  - %s (%s) %.1f\n", r.Name, r.Cuisine, r.Rating)
	}
}

// remoteCall runs one API request with a fresh app context and prints the
// response.
func remoteCall(cmd *cobra.Command, flags *rootFlags, name string, call func(*AppContext) (json.RawMessage, error)) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.CommandLogger(name)
	log.WithFields(map[string]any{"api": app.API.BaseURL()}).Debug("calling api")

	raw, err := call(app)
	if err != nil {
		log.Error(err, "request failed")
		return requestFailed(name, err)
	}
	return printRaw(cmd, raw)
}
