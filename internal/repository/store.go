package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
)

// Store is the unit of work over a gorm database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Do runs fn inside one transaction with repositories bound to it. The
// transaction commits when fn returns nil and rolls back on error or panic.
// Errors that are not already typed come back as Conflict for unique
// violations and Storage otherwise.
func (s *Store) Do(ctx context.Context, fn func(Repositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
	if err == nil {
		return nil
	}

	var appErr *apierrors.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case IsUniqueViolation(err):
		return apierrors.Conflict("Resource already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierrors.Validation("Referenced resource does not exist", nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierrors.NotFound("")
	default:
		return apierrors.Storage("Database operation failed", err)
	}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func newRepositories(tx *gorm.DB) Repositories {
	return Repositories{
		Users:       NewUserRepository(tx),
		Preferences: NewPreferencesRepository(tx),
		Projects:    NewProjectRepository(tx),
		Tasks:       NewTaskRepository(tx),
		Comments:    NewCommentRepository(tx),
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation,
// either translated by gorm or as reported by the driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
