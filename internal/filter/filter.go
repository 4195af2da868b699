// Package filter holds the set of constraints a mission profile is checked
// against. A FilterSet is immutable once built; every field is optional and
// an absent field places no constraint on a profile.
package filter

import (
	"slices"

	"github.com/ksts/profileselector/pkg/core"
)

// FilterSet is a snapshot of the active profile constraints.
type FilterSet struct {
	mass         *float64
	altitude     *float64
	crewCapacity *int
	oneWay       *bool
	dockingPorts []string
	hasPorts     bool
	body         *string
	missionType  *core.MissionType
}

// Option configures a FilterSet.
type Option func(*FilterSet)

// WithMass requires a payload mass of at least tons.
func WithMass(tons float64) Option {
	return func(f *FilterSet) {
		f.mass = &tons
	}
}

// WithAltitude requires a max altitude of at least meters.
func WithAltitude(meters float64) Option {
	return func(f *FilterSet) {
		f.altitude = &meters
	}
}

// WithCrewCapacity requires room for at least n crew.
func WithCrewCapacity(n int) Option {
	return func(f *FilterSet) {
		f.crewCapacity = &n
	}
}

// WithOneWay is the round-trip constraint: the profile's one-way flag must equal oneWay.
func WithOneWay(oneWay bool) Option {
	return func(f *FilterSet) {
		f.oneWay = &oneWay
	}
}

// WithDockingPortTypes requires at least one docking port of the given types.
// An empty list is still an active constraint that no profile can satisfy.
func WithDockingPortTypes(types ...string) Option {
	accepted := slices.Clone(types)
	return func(f *FilterSet) {
		f.dockingPorts = accepted
		f.hasPorts = true
	}
}

// WithBody requires the profile to target the named body.
func WithBody(name string) Option {
	return func(f *FilterSet) {
		f.body = &name
	}
}

// WithMissionType requires the given mission type. Profiles of another type
// are removed from projections entirely.
func WithMissionType(t core.MissionType) Option {
	return func(f *FilterSet) {
		f.missionType = &t
	}
}

// New builds a FilterSet from the given options. New() with no options is
// the empty filter.
func New(opts ...Option) FilterSet {
	var f FilterSet
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.mass == nil &&
		f.altitude == nil &&
		f.crewCapacity == nil &&
		f.oneWay == nil &&
		!f.hasPorts &&
		f.body == nil &&
		f.missionType == nil
}

func (f FilterSet) Mass() (float64, bool) {
	if f.mass == nil {
		return 0, false
	}
	return *f.mass, true
}

func (f FilterSet) Altitude() (float64, bool) {
	if f.altitude == nil {
		return 0, false
	}
	return *f.altitude, true
}

func (f FilterSet) CrewCapacity() (int, bool) {
	if f.crewCapacity == nil {
		return 0, false
	}
	return *f.crewCapacity, true
}

func (f FilterSet) OneWay() (bool, bool) {
	if f.oneWay == nil {
		return false, false
	}
	return *f.oneWay, true
}

// DockingPortTypes returns a copy of the accepted port types.
func (f FilterSet) DockingPortTypes() ([]string, bool) {
	if !f.hasPorts {
		return nil, false
	}
	return slices.Clone(f.dockingPorts), true
}

// AcceptsDockingPort reports whether the port type is in the accepted set.
// It is false when no docking port constraint is set.
func (f FilterSet) AcceptsDockingPort(portType string) bool {
	return f.hasPorts && slices.Contains(f.dockingPorts, portType)
}

func (f FilterSet) Body() (string, bool) {
	if f.body == nil {
		return "", false
	}
	return *f.body, true
}

func (f FilterSet) MissionType() (core.MissionType, bool) {
	if f.missionType == nil {
		return 0, false
	}
	return *f.missionType, true
}
