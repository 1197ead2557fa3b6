package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
)

// defaultRadius is the search radius used when --radius is not given.
const defaultRadius = 50

type mapOptions struct {
	lat    float64
	lon    float64
	radius float64
}

func newMapCmd(flags *rootFlags) *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Search points of interest around a location",
	}
	cmd.PersistentFlags().Float64Var(&opts.lat, "lat", fixtures.InitialRegion.Latitude, "Latitude")
	cmd.PersistentFlags().Float64Var(&opts.lon, "lon", fixtures.InitialRegion.Longitude, "Longitude")
	cmd.PersistentFlags().Float64Var(&opts.radius, "radius", defaultRadius, "Search radius")

	cmd.AddCommand(&cobra.Command{
		Use:   "spots",
		Short: "List tourist spots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return remoteCall(cmd, flags, "map spots", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Map.TouristSpots(cmd.Context(), opts.lat, opts.lon, opts.radius)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return remoteCall(cmd, flags, "map restaurants", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Map.Restaurants(cmd.Context(), opts.lat, opts.lon, opts.radius)
			})
		},
	})

	return cmd
}
