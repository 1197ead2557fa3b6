package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

type profileOptions struct {
	remote   bool
	name     string
	username string
	bio      string
}

func newProfileCmd(flags *rootFlags) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit traveller profiles",
	}

	show := &cobra.Command{
		Use:   "show [user-id]",
		Short: "Show a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := profileID(args)
			if opts.remote {
				return remoteCall(cmd, flags, "profile show", func(app *AppContext) (json.RawMessage, error) {
					return app.API.Profile.Get(cmd.Context(), id)
				})
			}
			profile := fixtures.Profile()
			if profile.ID != id {
				return newCommandError("show profile", fmt.Sprintf("looking up %q", id), fmt.Errorf("no bundled profile with id %q", id), "Use --remote to read profiles from the travel API.")
			}
			return printJSON(cmd, profile)
		},
	}
	show.Flags().BoolVar(&opts.remote, "remote", false, "Read from the travel API instead of the bundled data")

	savedPlans := &cobra.Command{
		Use:   "saved-plans [user-id]",
		Short: "List saved travel plans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := profileID(args)
			if opts.remote {
				return remoteCall(cmd, flags, "profile saved-plans", func(app *AppContext) (json.RawMessage, error) {
					return app.API.Profile.SavedPlans(cmd.Context(), id)
				})
			}
			rows := make([][]any, 0)
			for _, p := range fixtures.Profile().SavedPlans {
				rows = append(rows, []any{p.ID, p.Destination, p.Duration, p.Budget})
			}
			return table(cmd.OutOrStdout(), "ID\tDESTINATION\tDURATION\tBUDGET", rows)
		},
	}
	savedPlans.Flags().BoolVar(&opts.remote, "remote", false, "Read from the travel API instead of the bundled data")

	update := &cobra.Command{
		Use:   "update [user-id]",
		Short: "Update name, username or bio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := profileID(args)
			upd, err := buildProfileUpdate(cmd, opts)
			if err != nil {
				return err
			}
			return remoteCall(cmd, flags, "profile update", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Profile.Update(cmd.Context(), id, upd)
			})
		},
	}
	update.Flags().StringVar(&opts.name, "name", "", "Display name")
	update.Flags().StringVar(&opts.username, "username", "", "Username")
	update.Flags().StringVar(&opts.bio, "bio", "", "Bio (max 150 characters)")

	cmd.AddCommand(show, savedPlans, update)
	return cmd
}

func profileID(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return fixtures.Profile().ID
}

// buildProfileUpdate sends only the fields whose flags were set. Set fields
// are checked with the same rules as the edit profile screen.
func buildProfileUpdate(cmd *cobra.Command, opts *profileOptions) (api.ProfileUpdate, error) {
	current := fixtures.Profile()
	form := validation.EditProfileForm{Name: current.Name, Username: current.Username, Bio: current.Bio}

	var upd api.ProfileUpdate
	if cmd.Flags().Changed("name") {
		form.Name = opts.name
		upd.Name = api.String(opts.name)
	}
	if cmd.Flags().Changed("username") {
		form.Username = opts.username
		upd.Username = api.String(opts.username)
	}
	if cmd.Flags().Changed("bio") {
		form.Bio = opts.bio
		upd.Bio = api.String(opts.bio)
	}

	if upd.Name == nil && upd.Username == nil && upd.Bio == nil {
		return upd, yatraerrors.NewValidationError("", "Nothing to update: pass --name, --username or --bio", nil)
	}
	if err := validation.Validate(form); err != nil {
		return upd, err
	}
	return upd, nil
}
