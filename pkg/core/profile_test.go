package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionTypeName(t *testing.T) {
	assert.Equal(t, "deploy", MissionTypeName(MissionTypeDeploy))
	assert.Equal(t, "transport", MissionTypeName(MissionTypeTransport))
	assert.Equal(t, "unknown(7)", MissionTypeName(MissionType(7)))
	assert.Equal(t, "transport", MissionTypeTransport.String())
}

func TestParseMissionType(t *testing.T) {
	tests := []struct {
		input   string
		want    MissionType
		wantErr bool
	}{
		{input: "deploy", want: MissionTypeDeploy},
		{input: "TRANSPORT", want: MissionTypeTransport},
		{input: " Transport ", want: MissionTypeTransport},
		{input: "rescue", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMissionType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCostPerTon(t *testing.T) {
	p := MissionProfile{LaunchCost: 12000, PayloadMass: 4}
	assert.Equal(t, 3000.0, p.CostPerTon())

	p.PayloadMass = 0
	assert.Equal(t, 0.0, p.CostPerTon())
}
