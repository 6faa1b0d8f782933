package services

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kristian-01/nine27-mobile/repository"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewGormCartRepository(db),
		repository.NewGormProductRepository(db),
	)
}

func expectProductLookup(mock sqlmock.Sqlmock, id uint, name, price string, stock int, active bool) {
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "price", "stock", "is_active", "created_at", "updated_at"}).
			AddRow(id, name, name, price, stock, active, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_categories"`)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "category_id"}))
}

func TestAddItemSnapshotsCurrentPrice(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := newCartService(db)
	userID := uuid.New()

	expectProductLookup(mock, 7, "Paracetamol", "30.00", 10, true)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cart_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	item, svcErr := svc.AddItem(context.Background(), userID, &AddToCartRequest{ProductID: 7, Quantity: 2})
	require.Nil(t, svcErr)
	require.NotNil(t, item)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(money("30.00")))
	assert.Equal(t, "Paracetamol", item.Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := newCartService(db)

	expectProductLookup(mock, 7, "Paracetamol", "30.00", 10, false)

	item, svcErr := svc.AddItem(context.Background(), uuid.New(), &AddToCartRequest{ProductID: 7, Quantity: 1})
	require.NotNil(t, svcErr)
	assert.Nil(t, item)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Product is not available", svcErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemRejectsOversizedQuantity(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := newCartService(db)

	expectProductLookup(mock, 7, "Paracetamol", "30.00", 3, true)

	item, svcErr := svc.AddItem(context.Background(), uuid.New(), &AddToCartRequest{ProductID: 7, Quantity: 4})
	require.NotNil(t, svcErr)
	assert.Nil(t, item)
	assert.Equal(t, "Insufficient stock available", svcErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItemUnknownProduct(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := newCartService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, svcErr := svc.AddItem(context.Background(), uuid.New(), &AddToCartRequest{ProductID: 99, Quantity: 1})
	require.NotNil(t, svcErr)
	assert.Nil(t, item)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
