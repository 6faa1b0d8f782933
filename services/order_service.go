package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/repository"
)

// Flat pricing rules: 10% tax, free shipping strictly above 100 currency
// units, otherwise a flat 10.
var (
	taxRate           = decimal.NewFromFloat(0.10)
	freeShippingAbove = decimal.NewFromInt(100)
	flatShippingFee   = decimal.NewFromInt(10)
)

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	BillingAddress  models.Address `json:"billing_address" binding:"required"`
	ShippingAddress models.Address `json:"shipping_address" binding:"required"`
	PaymentMethod   string         `json:"payment_method" binding:"required"`
	// Optional explicit items; when absent the user's cart is used.
	Items []CheckoutItem `json:"items" binding:"omitempty,min=1,dive"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// checkoutLine pairs a resolved product with the quantity being bought.
type checkoutLine struct {
	Product  models.Product
	Quantity int
}

// Totals holds the computed order amounts.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices the lines at the current product price. Tax is rounded
// to cents; shipping is free only when the subtotal exceeds the threshold
// (subtotal of exactly 100.00 still pays shipping).
func ComputeTotals(lines []checkoutLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(taxRate).Round(2)
	shipping := flatShippingFee
	if subtotal.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

// mergeItems collapses duplicate product references by summing quantities,
// preserving first-seen order.
func mergeItems(items []CheckoutItem) ([]uint, map[uint]int) {
	qtyByID := make(map[uint]int, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if _, seen := qtyByID[it.ProductID]; !seen {
			ids = append(ids, it.ProductID)
		}
		qtyByID[it.ProductID] += it.Quantity
	}
	return ids, qtyByID
}

// PlaceOrder runs the full checkout workflow in one transaction: resolve
// lines, validate stock, compute totals, persist order and items with
// product snapshots, decrement stock, and clear the cart when it was the
// item source. Any failure rolls back every write.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *PlaceOrderRequest) (*models.Order, *ServiceError) {
	var orderID uuid.UUID

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)
		carts := s.cartRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		fromCart := len(req.Items) == 0

		var lines []checkoutLine
		if fromCart {
			cartItems, err := carts.FindByUser(ctx, userID)
			if err != nil {
				return err
			}
			if len(cartItems) == 0 {
				return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Cart is empty"}
			}
			for _, item := range cartItems {
				// A hard-deleted product leaves the preload zero-valued.
				if item.Product.ID == 0 {
					return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Some products not found"}
				}
				lines = append(lines, checkoutLine{Product: item.Product, Quantity: item.Quantity})
			}
		} else {
			ids, qtyByID := mergeItems(req.Items)
			found, err := products.FindByIDs(ctx, ids)
			if err != nil {
				return err
			}
			if len(found) != len(ids) {
				return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Some products not found"}
			}
			for _, product := range found {
				lines = append(lines, checkoutLine{Product: product, Quantity: qtyByID[product.ID]})
			}
		}

		for _, line := range lines {
			if line.Quantity > line.Product.Stock {
				return &ServiceError{
					StatusCode: http.StatusBadRequest,
					Message:    "Insufficient stock for " + line.Product.Name,
				}
			}
		}

		totals := ComputeTotals(lines)

		order := &models.Order{
			ID:              uuid.New(),
			UserID:          userID,
			Status:          models.OrderStatusPending,
			Subtotal:        totals.Subtotal,
			TaxAmount:       totals.Tax,
			ShippingAmount:  totals.Shipping,
			TotalAmount:     totals.Total,
			BillingAddress:  req.BillingAddress,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		}

		for _, line := range lines {
			qty := decimal.NewFromInt(int64(line.Quantity))
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				ProductID:       line.Product.ID,
				Quantity:        line.Quantity,
				UnitPrice:       line.Product.Price,
				TotalPrice:      line.Product.Price.Mul(qty),
				ProductSnapshot: line.Product.Snapshot(),
			})
		}

		if err := orders.Create(ctx, order); err != nil {
			return err
		}

		// The conditional decrement is the arbiter under concurrency; the
		// pre-check above only produces the friendlier per-product message.
		for _, line := range lines {
			if err := products.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return &ServiceError{
						StatusCode: http.StatusBadRequest,
						Message:    "Insufficient stock for " + line.Product.Name,
					}
				}
				return err
			}
		}

		if fromCart {
			if err := carts.ClearByUser(ctx, userID); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})

	if txErr != nil {
		var svcErr *ServiceError
		if errors.As(txErr, &svcErr) {
			return nil, svcErr
		}
		zap.L().Error("Failed to place order", zap.String("user_id", userID.String()), zap.Error(txErr))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to place order"}
	}

	order, err := s.orderRepo.FindByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		zap.L().Error("Failed to reload created order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to place order"}
	}
	return order, nil
}

// CancelOrder transitions a pending order to cancelled and restores the
// stock of every item. A missing product aborts the whole transaction: the
// restock must be complete or not happen at all.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		zap.L().Error("Failed to fetch order for cancellation", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to cancel order"}
	}

	if order.UserID != userID {
		return nil, &ServiceError{StatusCode: http.StatusForbidden, Message: "Unauthorized"}
	}

	if order.Status != models.OrderStatusPending {
		return nil, &ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    "Cannot cancel order with current status",
		}
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.productRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		// Conditional flip first so a concurrent cancel or status change
		// loses cleanly; the restocks below are rolled back with it.
		flipped, err := orders.UpdateStatusIf(ctx, orderID, models.OrderStatusPending, models.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if !flipped {
			return &ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    "Cannot cancel order with current status",
			}
		}

		for _, item := range order.OrderItems {
			if err := products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					zap.L().Error("Product missing during restock",
						zap.String("order_id", orderID.String()),
						zap.Uint("product_id", item.ProductID))
					return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to cancel order"}
				}
				return err
			}
		}
		return nil
	})

	if txErr != nil {
		var svcErr *ServiceError
		if errors.As(txErr, &svcErr) {
			return nil, svcErr
		}
		zap.L().Error("Failed to cancel order", zap.String("order_id", orderID.String()), zap.Error(txErr))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to cancel order"}
	}

	updated, err := s.orderRepo.FindByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		zap.L().Error("Failed to reload cancelled order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to cancel order"}
	}
	return updated, nil
}

// GetUserOrders retrieves paginated orders for a specific user
func (s *OrderService) GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.orderRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}

	return &OrderListResponse{
		Orders: orders,
		Meta: MetaData{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: calculateTotalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}, nil
}

// GetOrderByID retrieves a specific order, refusing access to non-owners.
func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		zap.L().Error("Failed to fetch order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}
	if order.UserID != userID {
		return nil, &ServiceError{StatusCode: http.StatusForbidden, Message: "Unauthorized"}
	}
	return order, nil
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
