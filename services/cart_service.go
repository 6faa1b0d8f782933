package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/repository"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart items with the running total at snapshot
// prices.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, *ServiceError) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("Failed to fetch cart", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch cart items"}
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice())
	}

	return &CartResponse{Items: items, Total: total, Count: len(items)}, nil
}

// AddItem upserts a (user, product) cart row, snapshotting the product's
// current price.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *AddToCartRequest) (*models.CartItem, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		zap.L().Error("Failed to fetch product", zap.Uint("product_id", req.ProductID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to add product to cart"}
	}

	if !product.IsActive {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Product is not available"}
	}
	if product.Stock < req.Quantity {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Insufficient stock available"}
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		Price:     product.Price,
	}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		zap.L().Error("Failed to upsert cart item", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to add product to cart"}
	}

	item.Product = *product
	return item, nil
}

// UpdateItem changes the quantity on an owned cart row and refreshes its
// price snapshot.
func (s *CartService) UpdateItem(ctx context.Context, userID uuid.UUID, itemID uint, req *UpdateCartItemRequest) (*models.CartItem, *ServiceError) {
	item, err := s.cartRepo.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Cart item not found"}
		}
		zap.L().Error("Failed to fetch cart item", zap.Uint("cart_item_id", itemID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update cart item"}
	}

	if item.Product.Stock < req.Quantity {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Insufficient stock available"}
	}

	item.Quantity = req.Quantity
	item.Price = item.Product.Price
	if err := s.cartRepo.Update(ctx, item); err != nil {
		zap.L().Error("Failed to update cart item", zap.Uint("cart_item_id", itemID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update cart item"}
	}

	return item, nil
}

// RemoveItem deletes an owned cart row.
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uint) *ServiceError {
	if err := s.cartRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Cart item not found"}
		}
		zap.L().Error("Failed to remove cart item", zap.Uint("cart_item_id", itemID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to remove item from cart"}
	}
	return nil
}

// Clear removes every cart row for the user.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) *ServiceError {
	if err := s.cartRepo.ClearByUser(ctx, userID); err != nil {
		zap.L().Error("Failed to clear cart", zap.String("user_id", userID.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to clear cart"}
	}
	return nil
}
