package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busca-pet/internal/domain/pets"
	"busca-pet/internal/platform/apperr"
)

func newMock(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUnitOfWork(db, nil), mock
}

func TestUnitOfWork_Commit(t *testing.T) {
	uow, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(ctx context.Context, s pets.Stores) error {
		assert.NotNil(t, s.Pets)
		assert.NotNil(t, s.Addresses)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	uow, mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(ctx context.Context, s pets.Stores) error {
		return boom
	})
	assert.Equal(t, boom, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollbackFailureIsStorageError(t *testing.T) {
	uow, mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

	err := uow.Do(context.Background(), func(ctx context.Context, s pets.Stores) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollbackOnPanic(t *testing.T) {
	uow, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = uow.Do(context.Background(), func(ctx context.Context, s pets.Stores) error {
			panic("kaboom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginError(t *testing.T) {
	uow, mock := newMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := uow.View(context.Background(), func(ctx context.Context, s pets.Stores) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitError(t *testing.T) {
	uow, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := uow.Do(context.Background(), func(ctx context.Context, s pets.Stores) error {
		return nil
	})
	var se *apperr.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "commit", se.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}
