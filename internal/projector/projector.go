// Package projector turns the raw profile collection into the list an
// operator sees: hard filters first, then per-profile evaluation, then the
// "hide invalid" visibility rule.
package projector

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/text/cases"

	"github.com/ksts/profileselector/internal/evaluator"
	"github.com/ksts/profileselector/internal/filter"
	"github.com/ksts/profileselector/pkg/core"
)

// ViewState is the caller-owned state of the list view.
type ViewState struct {
	Search      string
	HideInvalid bool
}

// DefaultViewState hides invalid profiles and has no search text.
func DefaultViewState() ViewState {
	return ViewState{HideInvalid: true}
}

// Projection is the result of one projection pass.
type Projection struct {
	// Visible keeps the source collection order.
	Visible []evaluator.EvaluatedProfile
	// InvalidIndices are positions in Visible of profiles that failed a filter
	InvalidIndices []int
	// SelectedIndex is the position of the selected profile in Visible, or -1
	SelectedIndex int
	// CollectionEmpty is set when the source collection had no profiles at all
	CollectionEmpty bool
	// HideInvalidOffered is set when any filter can mark a profile invalid
	HideInvalidOffered bool
}

// HasSelection reports whether the selected profile is in the visible list.
func (p Projection) HasSelection() bool {
	return p.SelectedIndex >= 0
}

// IsInvalid reports whether the visible entry at index is marked invalid.
func (p Projection) IsInvalid(index int) bool {
	return slices.Contains(p.InvalidIndices, index)
}

// Project filters, evaluates, and orders profiles. selected is the identity
// of the currently selected profile, or nil.
func Project(profiles []core.MissionProfile, f filter.FilterSet, view ViewState, selected *uint) Projection {
	proj := Projection{
		SelectedIndex:      -1,
		CollectionEmpty:    len(profiles) == 0,
		HideInvalidOffered: !f.IsEmpty(),
	}
	if proj.CollectionEmpty {
		return proj
	}

	missionType, hardType := f.MissionType()

	var search string
	fold := cases.Fold()
	if view.Search != "" {
		search = fold.String(view.Search)
	}

	for _, p := range profiles {
		// Other mission types are never shown, whatever HideInvalid says.
		if hardType && p.MissionType != missionType {
			continue
		}
		if search != "" &&
			!strings.Contains(fold.String(p.VesselName), search) &&
			!strings.Contains(fold.String(p.ProfileName), search) {
			continue
		}

		e := evaluator.Evaluate(p, f)
		if !e.Valid && view.HideInvalid {
			continue
		}

		if !e.Valid {
			proj.InvalidIndices = append(proj.InvalidIndices, len(proj.Visible))
		}
		if selected != nil && p.ID == *selected {
			proj.SelectedIndex = len(proj.Visible)
		}
		proj.Visible = append(proj.Visible, e)
	}

	return proj
}

// Projector runs projection passes and records metrics about them.
type Projector struct {
	logger *slog.Logger

	passes  metric.Int64Counter
	visible metric.Int64Histogram
	hidden  metric.Int64Histogram
}

// New creates a Projector. Metrics go to the global OTel meter provider
// (no-op unless one is configured).
func New(logger *slog.Logger) (*Projector, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Projector{logger: logger}

	m := meter()

	var err error
	p.passes, err = m.Int64Counter(
		"projector.passes",
		metric.WithDescription("Total projection passes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating passes counter: %w", err)
	}

	p.visible, err = m.Int64Histogram(
		"projector.profiles.visible",
		metric.WithDescription("Profiles shown per projection pass"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating visible histogram: %w", err)
	}

	p.hidden, err = m.Int64Histogram(
		"projector.profiles.hidden",
		metric.WithDescription("Profiles removed by filters per projection pass"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hidden histogram: %w", err)
	}

	return p, nil
}

// Project runs Project and records the pass.
func (p *Projector) Project(ctx context.Context, profiles []core.MissionProfile, f filter.FilterSet, view ViewState, selected *uint) Projection {
	proj := Project(profiles, f, view, selected)

	p.passes.Add(ctx, 1)
	p.visible.Record(ctx, int64(len(proj.Visible)))
	p.hidden.Record(ctx, int64(len(profiles)-len(proj.Visible)))

	p.logger.Debug("Projected profiles",
		"total", len(profiles),
		"visible", len(proj.Visible),
		"invalid", len(proj.InvalidIndices),
		"selectedIndex", proj.SelectedIndex,
		"search", view.Search,
		"hideInvalid", view.HideInvalid,
	)

	return proj
}
