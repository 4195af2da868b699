package database

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksts/profileselector/internal/model"
	"github.com/ksts/profileselector/internal/model/convert"
	"github.com/ksts/profileselector/pkg/core"
)

func newTestManager(t *testing.T) (*Manager, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	m := NewManager(zerolog.New(&buf))
	require.NoError(t, m.OpenSqlite(filepath.Join(t.TempDir(), "profiles.db")))
	require.NoError(t, m.Setup())
	t.Cleanup(func() { m.Close() })
	return m, &buf
}

func TestLoadProfiles_Empty(t *testing.T) {
	m, _ := newTestManager(t)

	profiles, err := m.LoadProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestLoadProfiles_RecordedOrder(t *testing.T) {
	m, _ := newTestManager(t)

	seed := []core.MissionProfile{
		{ProfileName: "Zeta Lander", MissionType: core.MissionTypeDeploy, BodyName: "Mun", PayloadMass: 4.04},
		{ProfileName: "Alpha Ferry", MissionType: core.MissionTypeTransport, DockingPortTypes: []string{"size1", "size2"}},
	}
	for _, p := range seed {
		row := convert.MissionProfileToGorm(p)
		require.NoError(t, m.DB.Create(&row).Error)
	}

	profiles, err := m.LoadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "Zeta Lander", profiles[0].ProfileName)
	assert.Equal(t, uint(1), profiles[0].ID)
	assert.Equal(t, 4.04, profiles[0].PayloadMass)
	assert.Nil(t, profiles[0].DockingPortTypes)

	assert.Equal(t, "Alpha Ferry", profiles[1].ProfileName)
	assert.Equal(t, core.MissionTypeTransport, profiles[1].MissionType)
	assert.Equal(t, []string{"size1", "size2"}, profiles[1].DockingPortTypes)
}

func TestLoadProfiles_SkipsUnreadableRows(t *testing.T) {
	m, buf := newTestManager(t)

	require.NoError(t, m.DB.Create(&model.MissionProfile{ProfileName: "Broken", MissionType: "orbit"}).Error)
	require.NoError(t, m.DB.Create(&model.MissionProfile{ProfileName: "Fine", MissionType: "deploy"}).Error)

	profiles, err := m.LoadProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Fine", profiles[0].ProfileName)
	assert.Contains(t, buf.String(), "Skipping unreadable mission profile")
}

func TestLoadProfiles_NotOpen(t *testing.T) {
	m := NewManager(zerolog.Nop())

	_, err := m.LoadProfiles()
	require.Error(t, err)
	require.Error(t, m.Setup())
	assert.NoError(t, m.Close())
}

func TestOpenSqlite_InMemory(t *testing.T) {
	m := NewManager(zerolog.Nop())
	require.NoError(t, m.OpenSqlite(""))
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.Setup())

	profiles, err := m.LoadProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
