package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kristian-01/nine27-mobile/models"
)

func TestUpdateStatusIf(t *testing.T) {
	t.Run("flips a pending order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGormOrderRepository(db)
		orderID := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := repo.UpdateStatusIf(context.Background(), orderID, models.OrderStatusPending, models.OrderStatusCancelled)
		assert.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a lost race", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGormOrderRepository(db)
		orderID := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := repo.UpdateStatusIf(context.Background(), orderID, models.OrderStatusPending, models.OrderStatusCancelled)
		assert.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByIDAndUserIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := repo.FindByIDAndUserID(context.Background(), uuid.New(), uuid.New())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartDeleteNotOwned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormCartRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
