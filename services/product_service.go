package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/repository"
)

const featuredLimit = 10

type CreateProductRequest struct {
	Name                 string          `json:"name" binding:"required,max=255"`
	Slug                 string          `json:"slug" binding:"required,max=255"`
	Description          string          `json:"description"`
	Manufacturer         string          `json:"manufacturer"`
	Price                decimal.Decimal `json:"price" binding:"required"`
	Stock                int             `json:"stock" binding:"gte=0"`
	ImageURL             string          `json:"image_url" binding:"omitempty,url"`
	Unit                 string          `json:"unit"`
	RequiresPrescription bool            `json:"requires_prescription"`
	CategoryIDs          []uint          `json:"category_ids"`
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Meta     MetaData         `json:"meta"`
}

type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *ProductCache
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache *ProductCache) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// ListProducts serves the filtered, sorted, paginated catalog view, cached
// by filter signature.
func (s *ProductService) ListProducts(ctx context.Context, params repository.ProductListParams) (*ProductListResponse, *ServiceError) {
	cacheKey := listCacheKey(params)
	if cached, ok := s.cache.GetList(ctx, cacheKey); ok {
		return cached, nil
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		zap.L().Error("Failed to fetch products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}

	resp := &ProductListResponse{
		Products: products,
		Meta: MetaData{
			Page:       params.Page,
			Limit:      params.PerPage,
			Total:      total,
			TotalPages: calculateTotalPages(total, params.PerPage),
			HasMore:    total > int64(params.Page*params.PerPage),
		},
	}
	s.cache.SetListAsync(cacheKey, resp)
	return resp, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Product not found"}
		}
		zap.L().Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch product"}
	}
	return product, nil
}

func (s *ProductService) FeaturedProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.productRepo.Featured(ctx, featuredLimit)
	if err != nil {
		zap.L().Error("Failed to fetch featured products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch featured products"}
	}
	return products, nil
}

// CreateProduct persists a new product and attaches its categories.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError) {
	if _, err := s.productRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, &ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: "Slug already in use"}
	} else if !errors.Is(err, repository.ErrNotFound) {
		zap.L().Error("Failed to check product slug", zap.String("slug", req.Slug), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
	}

	unit := req.Unit
	if unit == "" {
		unit = "piece"
	}

	product := &models.Product{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Description:          req.Description,
		Manufacturer:         req.Manufacturer,
		Price:                req.Price,
		Stock:                req.Stock,
		ImageURL:             req.ImageURL,
		Unit:                 unit,
		RequiresPrescription: req.RequiresPrescription,
		IsActive:             true,
	}

	if len(req.CategoryIDs) > 0 {
		categories, err := s.categoryRepo.FindByIDs(ctx, req.CategoryIDs)
		if err != nil {
			zap.L().Error("Failed to fetch categories", zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, &ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: "Some categories not found"}
		}
		product.Categories = categories
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.String("slug", req.Slug), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

func listCacheKey(p repository.ProductListParams) string {
	minPrice, maxPrice := "", ""
	if p.MinPrice != nil {
		minPrice = p.MinPrice.String()
	}
	if p.MaxPrice != nil {
		maxPrice = p.MaxPrice.String()
	}
	return fmt.Sprintf("s=%s:c=%s:min=%s:max=%s:stock=%t:inactive=%t:sort=%s_%s:p=%d:n=%d",
		p.Search, p.CategorySlug, minPrice, maxPrice,
		p.InStockOnly, p.IncludeInactive, p.SortBy, p.SortOrder, p.Page, p.PerPage)
}
