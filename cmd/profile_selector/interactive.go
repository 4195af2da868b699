package main

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ksts/profileselector/internal/projector"
)

// pickInteractive asks the operator to choose one of the visible profiles and
// returns its index. Invalid entries are listed but flagged.
func pickInteractive(p projector.Projection) (int, error) {
	options := make([]huh.Option[int], 0, len(p.Visible))
	for i, e := range p.Visible {
		label := fmt.Sprintf("%s (%s)", e.Profile.ProfileName, e.Profile.VesselName)
		if p.IsInvalid(i) {
			label += " [does not match filters]"
		}
		options = append(options, huh.NewOption(label, i))
	}

	choice := p.SelectedIndex
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Mission Profile").
				Options(options...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return -1, fmt.Errorf("profile picker: %w", err)
	}
	return choice, nil
}
