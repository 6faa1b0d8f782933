package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kristian-01/nine27-mobile/middleware"
	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/services"
)

type fakeOrderService struct {
	placeOrderFn  func(ctx context.Context, userID uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError)
	cancelOrderFn func(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError)
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
	return f.placeOrderFn(ctx, userID, req)
}

func (f *fakeOrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError) {
	return f.cancelOrderFn(ctx, userID, orderID)
}

func (f *fakeOrderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*services.OrderListResponse, *services.ServiceError) {
	return &services.OrderListResponse{}, nil
}

func (f *fakeOrderService) GetOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError) {
	return nil, &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
}

func setupOrderRouter(svc OrderServiceAPI, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserContextKey, userID)
		c.Next()
	})

	ctrl := NewOrderController(svc)
	r.POST("/orders", ctrl.CreateOrder)
	r.PATCH("/orders/:id/cancel", ctrl.CancelOrder)
	return r
}

func validOrderBody() map[string]interface{} {
	addr := map[string]string{
		"name":        "Juan Dela Cruz",
		"phone":       "09171234567",
		"address":     "123 Rizal St",
		"city":        "Manila",
		"postal_code": "1000",
	}
	return map[string]interface{}{
		"billing_address":  addr,
		"shipping_address": addr,
		"payment_method":   "cod",
	}
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateOrderSuccess(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	svc := &fakeOrderService{
		placeOrderFn: func(ctx context.Context, gotUser uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, "cod", req.PaymentMethod)
			return &models.Order{ID: orderID, UserID: gotUser, Status: models.OrderStatusPending}, nil
		},
	}

	r := setupOrderRouter(svc, userID)
	w := performJSON(r, http.MethodPost, "/orders", validOrderBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Order placed successfully", env.Message)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	svc := &fakeOrderService{
		placeOrderFn: func(ctx context.Context, userID uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}

	body := validOrderBody()
	delete(body, "billing_address")

	r := setupOrderRouter(svc, uuid.New())
	w := performJSON(r, http.MethodPost, "/orders", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
}

func TestCreateOrderServiceError(t *testing.T) {
	svc := &fakeOrderService{
		placeOrderFn: func(ctx context.Context, userID uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: http.StatusBadRequest, Message: "Cart is empty"}
		},
	}

	r := setupOrderRouter(svc, uuid.New())
	w := performJSON(r, http.MethodPost, "/orders", validOrderBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Cart is empty", env.Message)
}

func TestCancelOrderInvalidID(t *testing.T) {
	svc := &fakeOrderService{
		cancelOrderFn: func(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError) {
			t.Fatal("service must not be called for a malformed ID")
			return nil, nil
		},
	}

	r := setupOrderRouter(svc, uuid.New())
	w := performJSON(r, http.MethodPatch, "/orders/not-a-uuid/cancel", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid order ID format", env.Message)
}

func TestCancelOrderSuccess(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	svc := &fakeOrderService{
		cancelOrderFn: func(ctx context.Context, gotUser, gotOrder uuid.UUID) (*models.Order, *services.ServiceError) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, orderID, gotOrder)
			return &models.Order{ID: gotOrder, UserID: gotUser, Status: models.OrderStatusCancelled}, nil
		},
	}

	r := setupOrderRouter(svc, userID)
	w := performJSON(r, http.MethodPatch, "/orders/"+orderID.String()+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Order cancelled successfully", env.Message)
}
