package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/repository"
	"github.com/Kristian-01/nine27-mobile/services"
)

// Service interfaces consumed by the controllers. The concrete services
// satisfy these; tests substitute fakes.

type OrderServiceAPI interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *services.PlaceOrderRequest) (*models.Order, *services.ServiceError)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError)
	GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*services.OrderListResponse, *services.ServiceError)
	GetOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *services.ServiceError)
}

type CartServiceAPI interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*services.CartResponse, *services.ServiceError)
	AddItem(ctx context.Context, userID uuid.UUID, req *services.AddToCartRequest) (*models.CartItem, *services.ServiceError)
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID uint, req *services.UpdateCartItemRequest) (*models.CartItem, *services.ServiceError)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uint) *services.ServiceError
	Clear(ctx context.Context, userID uuid.UUID) *services.ServiceError
}

type ProductServiceAPI interface {
	ListProducts(ctx context.Context, params repository.ProductListParams) (*services.ProductListResponse, *services.ServiceError)
	GetProduct(ctx context.Context, id uint) (*models.Product, *services.ServiceError)
	FeaturedProducts(ctx context.Context) ([]models.Product, *services.ServiceError)
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, *services.ServiceError)
}

type CategoryServiceAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, *services.ServiceError)
	GetBySlug(ctx context.Context, slug string) (*models.Category, *services.ServiceError)
	CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, *services.ServiceError)
}

type AuthServiceAPI interface {
	Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResponse, *services.ServiceError)
	Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, *services.ServiceError)
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, *services.ServiceError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *services.UpdateProfileRequest) (*models.User, *services.ServiceError)
}
