package model

import (
	"time"

	"gorm.io/datatypes"
)

// DatabaseModels lists the tables the profile loader migrates
var DatabaseModels = []interface{}{
	&MissionProfile{},
}

// MissionProfile is the stored form of a recorded mission profile.
// Rows are read in primary key order, which is the order they were recorded in.
type MissionProfile struct {
	ID               uint                        `json:"id" gorm:"primarykey"`
	CreatedAt        time.Time                   `json:"createdAt"`
	ProfileName      string                      `json:"profileName" gorm:"size:255"`
	VesselName       string                      `json:"vesselName" gorm:"size:255;index"`
	MissionType      string                      `json:"missionType" gorm:"size:32;index"`
	LaunchMass       float64                     `json:"launchMass"`
	LaunchCost       float64                     `json:"launchCost"`
	PayloadMass      float64                     `json:"payloadMass"`
	MaxAltitude      float64                     `json:"maxAltitude"`
	MissionDuration  float64                     `json:"missionDuration"`
	CrewCapacity     int                         `json:"crewCapacity"`
	OneWayMission    bool                        `json:"oneWayMission"`
	DockingPortTypes datatypes.JSONSlice[string] `json:"dockingPortTypes"`
	BodyName         string                      `json:"bodyName" gorm:"size:64"`
}

func (*MissionProfile) TableName() string {
	return "mission_profiles"
}
