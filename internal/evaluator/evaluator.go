// Package evaluator checks a single mission profile against a FilterSet and
// reports, field by field, whether it passes.
package evaluator

import (
	"math"

	"github.com/ksts/profileselector/internal/filter"
	"github.com/ksts/profileselector/pkg/core"
)

// Status is the outcome of one field rule.
type Status int

const (
	// Unmarked means the field has no active filter.
	Unmarked Status = iota
	Pass
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unmarked"
	}
}

func statusOf(match bool) Status {
	if match {
		return Pass
	}
	return Fail
}

// Field names a filterable profile attribute.
type Field string

const (
	FieldRoundTrip    Field = "round-trip"
	FieldMissionType  Field = "mission-type"
	FieldDockingPorts Field = "docking-ports"
	FieldPayloadMass  Field = "payload-mass"
	FieldBody         Field = "body"
	FieldMaxAltitude  Field = "max-altitude"
	FieldCrewCapacity Field = "crew-capacity"
)

// EvaluatedProfile is a profile annotated with the result of one evaluation.
// It is only valid for the FilterSet it was computed against.
type EvaluatedProfile struct {
	Profile core.MissionProfile
	Valid   bool

	RoundTrip    Status
	MissionType  Status
	DockingPorts Status
	PayloadMass  Status
	Body         Status
	MaxAltitude  Status
	CrewCapacity Status

	// MatchingPorts are the profile's ports accepted by the docking port filter
	MatchingPorts []string
	// ShowDockingPorts is set for transport profiles and whenever a docking port filter is active
	ShowDockingPorts bool
}

// Statuses returns every field status in display order.
func (e EvaluatedProfile) Statuses() []FieldStatus {
	return []FieldStatus{
		{Field: FieldRoundTrip, Status: e.RoundTrip},
		{Field: FieldMissionType, Status: e.MissionType},
		{Field: FieldDockingPorts, Status: e.DockingPorts},
		{Field: FieldPayloadMass, Status: e.PayloadMass},
		{Field: FieldBody, Status: e.Body},
		{Field: FieldMaxAltitude, Status: e.MaxAltitude},
		{Field: FieldCrewCapacity, Status: e.CrewCapacity},
	}
}

// Invalid returns the fields that failed, in display order.
func (e EvaluatedProfile) Invalid() []Field {
	var failed []Field
	for _, fs := range e.Statuses() {
		if fs.Status == Fail {
			failed = append(failed, fs.Field)
		}
	}
	return failed
}

// FieldStatus pairs a field with its status.
type FieldStatus struct {
	Field  Field
	Status Status
}

// RoundMass rounds a mass to the single decimal place it is displayed with.
func RoundMass(tons float64) float64 {
	return math.Round(tons*10) / 10
}

// Evaluate checks profile against every active field of f. The profile is
// copied; the caller's value is never modified.
func Evaluate(profile core.MissionProfile, f filter.FilterSet) EvaluatedProfile {
	e := EvaluatedProfile{
		Profile:          profile,
		Valid:            true,
		ShowDockingPorts: profile.MissionType == core.MissionTypeTransport,
	}
	if f.IsEmpty() {
		return e
	}

	if oneWay, ok := f.OneWay(); ok {
		e.RoundTrip = statusOf(oneWay == profile.OneWayMission)
	}

	if mt, ok := f.MissionType(); ok {
		e.MissionType = statusOf(mt == profile.MissionType)
	}

	if _, ok := f.DockingPortTypes(); ok {
		e.ShowDockingPorts = true
		for _, port := range profile.DockingPortTypes {
			if f.AcceptsDockingPort(port) {
				e.MatchingPorts = append(e.MatchingPorts, port)
			}
		}
		e.DockingPorts = statusOf(len(e.MatchingPorts) > 0)
	}

	// Compared at display precision so the result never contradicts the rendered value.
	if mass, ok := f.Mass(); ok {
		e.PayloadMass = statusOf(RoundMass(mass) <= RoundMass(profile.PayloadMass))
	}

	if body, ok := f.Body(); ok {
		e.Body = statusOf(body == profile.BodyName)
	}

	if alt, ok := f.Altitude(); ok {
		e.MaxAltitude = statusOf(alt <= profile.MaxAltitude)
	}

	if crew, ok := f.CrewCapacity(); ok {
		e.CrewCapacity = statusOf(crew <= profile.CrewCapacity)
	}

	for _, fs := range e.Statuses() {
		if fs.Status == Fail {
			e.Valid = false
			break
		}
	}

	return e
}
