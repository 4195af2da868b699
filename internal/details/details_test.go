package details

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksts/profileselector/pkg/core"
)

type upperPorts struct {
	DefaultFormatters
}

func (upperPorts) DockingPort(portType string) string {
	return "Port " + portType
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Payload")
	require.NoError(t, err)
	assert.Equal(t, ModePayload, m)

	m, err = ParseMode("altitude")
	require.NoError(t, err)
	assert.Equal(t, ModeAltitude, m)

	_, err = ParseMode("cost")
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	p := core.MissionProfile{
		ProfileName:      "Station Ferry",
		LaunchCost:       123456,
		PayloadMass:      4,
		MaxAltitude:      75000,
		MissionDuration:  3725,
		DockingPortTypes: []string{"size1", "size2"},
	}

	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{name: "altitude", mode: ModeAltitude, want: "Max Altitude: 75 km"},
		{name: "payload", mode: ModePayload, want: "Max Payload: 4.00t"},
		{name: "unknown mode", mode: Mode("other"), want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(p, tt.mode, nil)
			assert.Equal(t, tt.want, s.Detail)
			assert.Equal(t, "1h2m5s", s.Duration)
			assert.Equal(t, "30,864", s.CostPerTon)
			assert.Equal(t, "size1, size2", s.DockingPorts)
		})
	}
}

func TestSummarize_CustomFormatters(t *testing.T) {
	p := core.MissionProfile{ProfileName: "Ferry", DockingPortTypes: []string{"size1"}}
	s := Summarize(p, ModePayload, upperPorts{})
	assert.Equal(t, "Port size1", s.DockingPorts)
	assert.Equal(t, "Ferry (Max Payload: 0.00t)", s.String())
}

func TestSummarize_NoPortsNoPayload(t *testing.T) {
	s := Summarize(core.MissionProfile{ProfileName: "Probe", LaunchCost: 500}, ModeAltitude, nil)
	assert.Equal(t, "N/A", s.DockingPorts)
	assert.Equal(t, "0", s.CostPerTon)
}
