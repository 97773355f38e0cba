package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/comedyconnector/backend/internal/config"
	"github.com/comedyconnector/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and tunes the pool. The returned
// handle is passed explicitly to every component; there is no package-level
// singleton. TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the slug and stub-team write paths rely on.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for all models, then the raw DDL AutoMigrate
// cannot express: generated tsvector columns, their GIN indexes, and the
// case-insensitive unique index on team names that closes the stub race.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.PersonalProfile{},
		&models.PerformerProfile{},
		&models.CoachProfile{},
		&models.Team{},
		&models.TeamMember{},
		&models.TeamCoach{},
		&models.ContactMessage{},
		&models.SystemLog{},
	); err != nil {
		return err
	}
	return migrateSearch(db)
}

func migrateSearch(db *gorm.DB) error {
	stmts := []string{
		`ALTER TABLE personal_profiles ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (
				setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
				setweight(to_tsvector('english', coalesce(bio, '')), 'B') ||
				setweight(to_tsvector('english', coalesce(training, '')), 'C') ||
				setweight(to_tsvector('english', coalesce(looking_for, '')), 'C')
			) STORED`,
		`CREATE INDEX IF NOT EXISTS idx_personal_profiles_search ON personal_profiles USING gin(search_vector)`,

		`ALTER TABLE coach_profiles ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (
				setweight(to_tsvector('english', coalesce(coaching_bio, '')), 'A') ||
				setweight(to_tsvector('english', coalesce(availability, '')), 'C')
			) STORED`,
		`CREATE INDEX IF NOT EXISTS idx_coach_profiles_search ON coach_profiles USING gin(search_vector)`,

		`ALTER TABLE teams ADD COLUMN IF NOT EXISTS search_vector tsvector
			GENERATED ALWAYS AS (
				setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
				setweight(to_tsvector('english', coalesce(description, '')), 'B') ||
				setweight(to_tsvector('english', coalesce(form, '')), 'C') ||
				setweight(to_tsvector('english', coalesce(looking_for, '')), 'C')
			) STORED`,
		`CREATE INDEX IF NOT EXISTS idx_teams_search ON teams USING gin(search_vector)`,

		`CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name_lower ON teams (lower(name))`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("search migration failed: %w", err)
		}
	}
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
