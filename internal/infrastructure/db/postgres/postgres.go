package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a gorm connection to Postgres. TranslateError is enabled so
// driver errors surface as gorm sentinels (gorm.ErrDuplicatedKey in
// particular, which the person repository maps to domain.ErrUsernameTaken).
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roleModel{},
		&personModel{},
		&competenceModel{},
		&competenceNameModel{},
		&availabilityModel{},
		&competenceProfileModel{},
	)
}
