package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Database aggregates the repositories. Link repositories are built per transaction by ProjectRepo.
type Database struct {
	db            *gorm.DB
	userRepo      *UserRepo
	interestRepo  *InterestRepo
	projectRepo   *ProjectRepo
	referenceRepo *ReferenceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:            db,
		userRepo:      NewUserRepo(db),
		interestRepo:  NewInterestRepo(db),
		projectRepo:   NewProjectRepo(db),
		referenceRepo: NewReferenceRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) InterestRepo() *InterestRepo {
	return d.interestRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ReferenceRepo() *ReferenceRepo {
	return d.referenceRepo
}

// Ping checks that the primary connection is alive.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
