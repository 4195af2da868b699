package registry

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/ksts/profileselector/pkg/core"
)

// profileFile is the on-disk layout of a YAML profile fixture.
type profileFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	ID           uint     `yaml:"id,omitempty"`
	Name         string   `yaml:"name"`
	Vessel       string   `yaml:"vessel"`
	Type         string   `yaml:"type"`
	LaunchMass   float64  `yaml:"launchMass"`
	LaunchCost   float64  `yaml:"launchCost"`
	PayloadMass  float64  `yaml:"payloadMass"`
	MaxAltitude  float64  `yaml:"maxAltitude"`
	Duration     float64  `yaml:"duration"`
	CrewCapacity int      `yaml:"crewCapacity"`
	OneWay       bool     `yaml:"oneWay"`
	DockingPorts []string `yaml:"dockingPorts,omitempty"`
	Body         string   `yaml:"body"`
}

// ParseYAML decodes mission profiles from a YAML document. An empty document
// yields no profiles.
func ParseYAML(r io.Reader) ([]core.MissionProfile, error) {
	var file profileFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	profiles := make([]core.MissionProfile, 0, len(file.Profiles))
	for i, e := range file.Profiles {
		mt, err := core.ParseMissionType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("profile %d (%q): %w", i, e.Name, err)
		}
		profiles = append(profiles, core.MissionProfile{
			ID:               e.ID,
			ProfileName:      e.Name,
			VesselName:       e.Vessel,
			MissionType:      mt,
			LaunchMass:       e.LaunchMass,
			LaunchCost:       e.LaunchCost,
			PayloadMass:      e.PayloadMass,
			MaxAltitude:      e.MaxAltitude,
			MissionDuration:  e.Duration,
			CrewCapacity:     e.CrewCapacity,
			OneWayMission:    e.OneWay,
			DockingPortTypes: e.DockingPorts,
			BodyName:         e.Body,
		})
	}
	return profiles, nil
}

// LoadFile reads a YAML profile file into a new registry
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile file: %w", err)
	}
	defer f.Close()

	profiles, err := ParseYAML(f)
	if err != nil {
		return nil, err
	}
	return FromProfiles(profiles)
}

// FromProfiles builds a registry holding profiles in the given order.
// Profiles without an ID get the lowest ID not claimed by another profile
// in the list.
func FromProfiles(profiles []core.MissionProfile) (*Registry, error) {
	claimed := make(map[uint]bool, len(profiles))
	for _, p := range profiles {
		if p.ID != 0 {
			claimed[p.ID] = true
		}
	}

	r := New()
	var next uint
	for i := range profiles {
		p := profiles[i]
		if p.ID == 0 {
			next++
			for claimed[next] {
				next++
			}
			p.ID = next
		}
		if err := r.Add(&p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
