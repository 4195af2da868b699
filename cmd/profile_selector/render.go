package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ksts/profileselector/internal/details"
	"github.com/ksts/profileselector/internal/evaluator"
	"github.com/ksts/profileselector/internal/projector"
	"github.com/ksts/profileselector/internal/registry"
	"github.com/ksts/profileselector/internal/selection"
)

func renderList(out io.Writer, p projector.Projection, total int, view projector.ViewState) {
	if p.CollectionEmpty {
		fmt.Fprintln(out, "No recordings found, switch to a new vessel to start recording a mission.")
		return
	}

	header := fmt.Sprintf("Mission profiles: %d of %d shown", len(p.Visible), total)
	if p.HideInvalidOffered {
		if view.HideInvalid {
			header += ", hiding invalid"
		} else {
			header += ", showing invalid"
		}
	}
	fmt.Fprintln(out, header)

	if len(p.Visible) == 0 {
		fmt.Fprintln(out, "No profiles match the current search and filters.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, e := range p.Visible {
		fmt.Fprintln(tw, formatRow(i, e, i == p.SelectedIndex))
	}
	tw.Flush()
}

func formatRow(index int, e evaluator.EvaluatedProfile, selected bool) string {
	marker := " "
	if selected {
		marker = "*"
	}
	route := "round-trip"
	if e.Profile.OneWayMission {
		route = "one-way"
	}

	cols := []string{
		fmt.Sprintf("%s[%d]", marker, index),
		fmt.Sprintf("%s (%s)", e.Profile.ProfileName, e.Profile.VesselName),
		e.Profile.MissionType.String(),
		route,
		fmt.Sprintf("%.1ft to %s", e.Profile.PayloadMass, e.Profile.BodyName),
		fmt.Sprintf("crew %d", e.Profile.CrewCapacity),
	}
	if e.ShowDockingPorts {
		ports := "N/A"
		if len(e.Profile.DockingPortTypes) > 0 {
			ports = strings.Join(e.Profile.DockingPortTypes, ",")
		}
		cols = append(cols, "ports "+ports)
	}
	if failed := e.Invalid(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, f := range failed {
			names[i] = string(f)
		}
		cols = append(cols, "invalid: "+strings.Join(names, ","))
	}
	return strings.Join(cols, "\t")
}

func renderSelected(out io.Writer, reg *registry.Registry, ctrl *selection.Controller, mode details.Mode) {
	id, ok := ctrl.Current()
	if !ok {
		fmt.Fprintln(out, "No mission profile selected.")
		return
	}
	p, ok := reg.Get(id)
	if !ok {
		fmt.Fprintln(out, "No mission profile selected.")
		return
	}

	s := details.Summarize(p, mode, details.DefaultFormatters{})
	fmt.Fprintf(out, "Mission Profile: %s\n", s)
	fmt.Fprintf(out, "  Duration: %s, Docking-Ports: %s, Cost: %s/t\n", s.Duration, s.DockingPorts, s.CostPerTon)
}
