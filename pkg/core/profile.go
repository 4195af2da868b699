// pkg/core/profile.go
package core

import (
	"fmt"
	"strings"
)

// MissionType is the kind of mission a profile was recorded for
type MissionType int

const (
	MissionTypeDeploy MissionType = iota
	MissionTypeTransport
)

// MissionTypeName returns the display name of a mission type
func MissionTypeName(t MissionType) string {
	switch t {
	case MissionTypeDeploy:
		return "deploy"
	case MissionTypeTransport:
		return "transport"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// String implements fmt.Stringer
func (t MissionType) String() string {
	return MissionTypeName(t)
}

// ParseMissionType converts a mission type name back to a MissionType.
// Matching is case-insensitive.
func ParseMissionType(s string) (MissionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deploy":
		return MissionTypeDeploy, nil
	case "transport":
		return MissionTypeTransport, nil
	default:
		return 0, fmt.Errorf("unknown mission type: %q", s)
	}
}

// MissionProfile is a recorded flight template.
// ID is the identity of the profile; names are not unique.
type MissionProfile struct {
	ID               uint
	ProfileName      string
	VesselName       string
	MissionType      MissionType
	LaunchMass       float64 // tons
	LaunchCost       float64
	PayloadMass      float64 // tons
	MaxAltitude      float64 // meters
	MissionDuration  float64 // seconds
	CrewCapacity     int
	OneWayMission    bool
	DockingPortTypes []string
	BodyName         string
}

// CostPerTon returns the launch cost per ton of payload, or 0 for profiles without payload
func (p MissionProfile) CostPerTon() float64 {
	if p.PayloadMass == 0 {
		return 0
	}
	return p.LaunchCost / p.PayloadMass
}
