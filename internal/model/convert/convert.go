// Package convert maps between stored GORM models and core models
package convert

import (
	"fmt"

	"github.com/ksts/profileselector/internal/model"
	"github.com/ksts/profileselector/pkg/core"
)

// MissionProfileToCore converts a stored profile to a core.MissionProfile.
func MissionProfileToCore(m model.MissionProfile) (core.MissionProfile, error) {
	mt, err := core.ParseMissionType(m.MissionType)
	if err != nil {
		return core.MissionProfile{}, fmt.Errorf("profile %d: %w", m.ID, err)
	}

	var ports []string
	if len(m.DockingPortTypes) > 0 {
		ports = append(ports, m.DockingPortTypes...)
	}

	return core.MissionProfile{
		ID:               m.ID,
		ProfileName:      m.ProfileName,
		VesselName:       m.VesselName,
		MissionType:      mt,
		LaunchMass:       m.LaunchMass,
		LaunchCost:       m.LaunchCost,
		PayloadMass:      m.PayloadMass,
		MaxAltitude:      m.MaxAltitude,
		MissionDuration:  m.MissionDuration,
		CrewCapacity:     m.CrewCapacity,
		OneWayMission:    m.OneWayMission,
		DockingPortTypes: ports,
		BodyName:         m.BodyName,
	}, nil
}

// MissionProfileToGorm converts a core.MissionProfile to its stored form.
func MissionProfileToGorm(p core.MissionProfile) model.MissionProfile {
	return model.MissionProfile{
		ID:               p.ID,
		ProfileName:      p.ProfileName,
		VesselName:       p.VesselName,
		MissionType:      core.MissionTypeName(p.MissionType),
		LaunchMass:       p.LaunchMass,
		LaunchCost:       p.LaunchCost,
		PayloadMass:      p.PayloadMass,
		MaxAltitude:      p.MaxAltitude,
		MissionDuration:  p.MissionDuration,
		CrewCapacity:     p.CrewCapacity,
		OneWayMission:    p.OneWayMission,
		DockingPortTypes: p.DockingPortTypes,
		BodyName:         p.BodyName,
	}
}
