package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewStore(db), mock
}

func TestStore_CommitFailureIsStorageError(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := store.Do(context.Background(), func(repos Repositories) error {
		return repos.Preferences.Update(1, map[string]interface{}{"theme": "dark"})
	})

	assert.ErrorIs(t, err, apierrors.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_StatementFailureRollsBack(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.Do(context.Background(), func(repos Repositories) error {
		return repos.Preferences.Update(1, map[string]interface{}{"language": "en"})
	})

	assert.ErrorIs(t, err, apierrors.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_TypedErrorsPassThrough(t *testing.T) {
	store, mock := setupMockStore(t)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "typed", err: apierrors.Forbidden("nope"), want: apierrors.ErrForbidden},
		{name: "duplicate key", err: gorm.ErrDuplicatedKey, want: apierrors.ErrConflict},
		{name: "driver unique message", err: errors.New("UNIQUE constraint failed: projects.slug"), want: apierrors.ErrConflict},
		{name: "foreign key", err: gorm.ErrForeignKeyViolated, want: apierrors.ErrValidation},
		{name: "missing row", err: gorm.ErrRecordNotFound, want: apierrors.ErrNotFound},
		{name: "anything else", err: errors.New("boom"), want: apierrors.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectRollback()

			err := store.Do(context.Background(), func(Repositories) error { return tt.err })
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Ping(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectPing()

	assert.NoError(t, store.Ping(context.Background()))
}
