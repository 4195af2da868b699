package main

import (
	"github.com/spf13/pflag"

	"github.com/ksts/profileselector/internal/filter"
	"github.com/ksts/profileselector/pkg/core"
)

func addFilterFlags(flags *pflag.FlagSet) {
	flags.Float64("mass", 0, "Minimum payload mass in tons")
	flags.Float64("altitude", 0, "Minimum max altitude in meters")
	flags.Int("crew", 0, "Minimum crew capacity")
	flags.Bool("one-way", false, "Require one-way (true) or round-trip (false) missions")
	flags.StringSlice("port", nil, "Accepted docking port type (repeatable)")
	flags.String("body", "", "Required target body")
	flags.String("type", "", "Required mission type: deploy or transport")
}

// buildFilter turns the filter flags that were set on the command line into
// a FilterSet. Flags left at their defaults are not constraints.
func buildFilter(flags *pflag.FlagSet) (filter.FilterSet, error) {
	var opts []filter.Option

	if flags.Changed("mass") {
		v, err := flags.GetFloat64("mass")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithMass(v))
	}
	if flags.Changed("altitude") {
		v, err := flags.GetFloat64("altitude")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithAltitude(v))
	}
	if flags.Changed("crew") {
		v, err := flags.GetInt("crew")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithCrewCapacity(v))
	}
	if flags.Changed("one-way") {
		v, err := flags.GetBool("one-way")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithOneWay(v))
	}
	if flags.Changed("port") {
		v, err := flags.GetStringSlice("port")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithDockingPortTypes(v...))
	}
	if flags.Changed("body") {
		v, err := flags.GetString("body")
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithBody(v))
	}
	if flags.Changed("type") {
		v, err := flags.GetString("type")
		if err != nil {
			return filter.FilterSet{}, err
		}
		mt, err := core.ParseMissionType(v)
		if err != nil {
			return filter.FilterSet{}, err
		}
		opts = append(opts, filter.WithMissionType(mt))
	}

	return filter.New(opts...), nil
}
