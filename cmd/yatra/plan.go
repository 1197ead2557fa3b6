package main

import (
	"github.com/spf13/cobra"
)

type planOptions struct {
	destination string
	budget      string
	duration    string
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Request a generated travel plan",
		Example: `  yatra plan --destination Goa --budget "₹20,000" --duration "3 days"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			raw, err := app.API.Chatbot.TravelPlan(cmd.Context(), opts.destination, opts.budget, opts.duration)
			if err != nil {
				app.CommandLogger("plan").Error(err, "travel plan request failed")
				return requestFailed("plan", err)
			}
			return printRaw(cmd, raw)
		},
	}

	cmd.Flags().StringVar(&opts.destination, "destination", "", "Where you want to go")
	cmd.Flags().StringVar(&opts.budget, "budget", "", "Total budget")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "Trip length")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
