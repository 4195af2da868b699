package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"source": { "type": "sqlite", "path": "/tmp/profiles.db" },
		"db": { "host": "10.0.0.1", "port": "5433" }
	}`)

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "sqlite", viper.GetString("source.type"))
	assert.Equal(t, "/tmp/profiles.db", viper.GetString("source.path"))
	assert.Equal(t, "10.0.0.1", viper.GetString("db.host"))
	assert.Equal(t, "5433", viper.GetString("db.port"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./selectorlogs", viper.GetString("logsDir"))
	assert.Equal(t, "yaml", viper.GetString("source.type"))
	assert.Equal(t, "./profiles.yaml", viper.GetString("source.path"))
	assert.Equal(t, "localhost", viper.GetString("db.host"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, "postgres", viper.GetString("db.username"))
	assert.Equal(t, "postgres", viper.GetString("db.password"))
	assert.Equal(t, "ksts", viper.GetString("db.database"))
	assert.Equal(t, true, viper.GetBool("selector.hideInvalid"))
	assert.Equal(t, "altitude", viper.GetString("selector.details"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	var notFound viper.ConfigFileNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestGetSourceConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{"source": {"type": "postgres"}}`)))

	sc := GetSourceConfig()
	assert.Equal(t, "postgres", sc.Type)
	assert.Equal(t, "./profiles.yaml", sc.Path)
}

func TestGetDBConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{"db": {"username": "ops", "database": "missions"}}`)))

	db := GetDBConfig()
	assert.Equal(t, "localhost", db.Host)
	assert.Equal(t, "ops", db.Username)
	assert.Equal(t, "missions", db.Database)
}

func TestGetSelectorConfig_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{"selector": {"hideInvalid": false, "details": "payload"}}`)))

	sc := GetSelectorConfig()
	assert.Equal(t, false, sc.HideInvalid)
	assert.Equal(t, "payload", sc.Details)
}

func TestGetOTelConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeConfig(t, `{}`)))
	oc := GetOTelConfig()
	assert.False(t, oc.Enabled)
	assert.Equal(t, "profile-selector", oc.ServiceName)
	assert.Equal(t, 30*time.Second, oc.ExportInterval)

	viper.Reset()
	require.NoError(t, Load(writeConfig(t, `{"otel": {"enabled": true, "exportInterval": "5s"}}`)))
	oc = GetOTelConfig()
	assert.True(t, oc.Enabled)
	assert.Equal(t, 5*time.Second, oc.ExportInterval)
}

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	assert.Equal(t, "testValue", GetString("testKey"))
}
