package database

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ksts/profileselector/internal/config"
	"github.com/ksts/profileselector/internal/model"
	"github.com/ksts/profileselector/internal/model/convert"
	"github.com/ksts/profileselector/pkg/core"
)

// Manager reads mission profiles from a SQL database.
type Manager struct {
	DB     *gorm.DB
	SqlDB  *sql.DB
	Logger zerolog.Logger
}

// NewManager creates a new database manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// OpenPostgres connects to the Postgres database described by cfg.
func (m *Manager) OpenPostgres(cfg config.DBConfig) error {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database,
	)

	m.Logger.Debug().Str("host", cfg.Host).Str("database", cfg.Database).Msg("Connecting to Postgres DB")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return m.attach(db)
}

// OpenSqlite opens a SQLite database file. If path is empty, an in-memory
// database is used.
func (m *Manager) OpenSqlite(path string) error {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open sqlite DB: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	if err := m.attach(db); err != nil {
		return err
	}

	if path == "" {
		// Every connection to :memory: is a separate database.
		m.SqlDB.SetMaxOpenConns(1)
		m.Logger.Info().Msg("Using in-memory SQLite DB")
	} else {
		m.Logger.Info().Str("path", path).Msg("Using local SQLite DB")
	}
	return nil
}

func (m *Manager) attach(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to validate connection: %w", err)
	}
	m.DB = db
	m.SqlDB = sqlDB
	return nil
}

// Setup migrates the profile tables.
func (m *Manager) Setup() error {
	if m.DB == nil {
		return fmt.Errorf("database not open")
	}
	m.Logger.Info().Msg("Migrating schema")
	if err := m.DB.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// LoadProfiles returns every stored profile in the order it was recorded.
func (m *Manager) LoadProfiles() ([]core.MissionProfile, error) {
	if m.DB == nil {
		return nil, fmt.Errorf("database not open")
	}

	var rows []model.MissionProfile
	if err := m.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error loading mission profiles: %w", err)
	}

	profiles := make([]core.MissionProfile, 0, len(rows))
	for _, row := range rows {
		p, err := convert.MissionProfileToCore(row)
		if err != nil {
			m.Logger.Warn().Err(err).Uint("id", row.ID).Msg("Skipping unreadable mission profile")
			continue
		}
		profiles = append(profiles, p)
	}

	m.Logger.Debug().Int("count", len(profiles)).Msg("Loaded mission profiles")
	return profiles, nil
}

// Close closes the underlying connection.
func (m *Manager) Close() error {
	if m.SqlDB == nil {
		return nil
	}
	return m.SqlDB.Close()
}
