package database

import (
	"fmt"
	"log"

	"fundi_backend/internal/config"
	"fundi_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key conflicts must surface as gorm.ErrDuplicatedKey
		// so the enrollment service can resolve races as reactivations.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")
	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Learner{},
		&model.Course{},
		&model.Career{},
		&model.CourseLevel{},
		&model.CourseEnrollment{},
		&model.LevelProgress{},
		&model.Achievement{},
		&model.Artifact{},
		&model.PathwayInputs{},
		&model.GateSnapshot{},
	)
}
