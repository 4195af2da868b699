package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksts/profileselector/internal/config"
	"github.com/ksts/profileselector/internal/database"
	"github.com/ksts/profileselector/internal/logging"
	"github.com/ksts/profileselector/internal/registry"
)

// openRegistry loads the configured profile source into a registry.
func openRegistry(src config.SourceConfig, db config.DBConfig, logLevel string) (*registry.Registry, error) {
	switch src.Type {
	case "sqlite", "postgres":
		if src.Type == "sqlite" && isYAMLPath(src.Path) {
			return nil, fmt.Errorf("sqlite source path %s is a YAML file, set --path to a database", src.Path)
		}
		m := database.NewManager(logging.NewZerolog(os.Stderr, logLevel))
		var err error
		if src.Type == "sqlite" {
			err = m.OpenSqlite(src.Path)
		} else {
			err = m.OpenPostgres(db)
		}
		if err != nil {
			return nil, err
		}
		defer m.Close()

		if err := m.Setup(); err != nil {
			return nil, err
		}
		profiles, err := m.LoadProfiles()
		if err != nil {
			return nil, err
		}
		return registry.FromProfiles(profiles)

	case "yaml", "":
		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			// No recordings yet.
			return registry.New(), nil
		}
		return registry.LoadFile(src.Path)

	default:
		return nil, fmt.Errorf("unknown profile source type: %s", src.Type)
	}
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
