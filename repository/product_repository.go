package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Kristian-01/nine27-mobile/models"
)

// Sortable fields for product listings. Client-supplied sort fields outside
// this set fall back to created_at.
var allowedSortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"stock":      true,
	"created_at": true,
	"updated_at": true,
}

// ProductListParams holds the filter, sort and pagination inputs for List.
type ProductListParams struct {
	Search          string
	CategorySlug    string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	InStockOnly     bool
	IncludeInactive bool
	SortBy          string
	SortOrder       string
	Page            int
	PerPage         int
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context, params ProductListParams) ([]models.Product, int64, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	UpsertBySlug(ctx context.Context, product *models.Product) error
	ReplaceCategories(ctx context.Context, product *models.Product, categories []models.Category) error
	DecrementStock(ctx context.Context, id uint, quantity int) error
	IncrementStock(ctx context.Context, id uint, quantity int) error
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &GormProductRepository{db: tx}
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Categories").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List retrieves products with filtering, allow-listed sorting and pagination.
func (r *GormProductRepository) List(ctx context.Context, params ProductListParams) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR manufacturer ILIKE ?",
			pattern, pattern, pattern)
	}
	if params.CategorySlug != "" {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.slug = ?", params.CategorySlug)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	if params.InStockOnly {
		query = query.Where("stock > 0")
	}
	if !params.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !allowedSortFields[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if params.SortOrder == "asc" {
		sortOrder = "asc"
	}

	offset := (params.Page - 1) * params.PerPage
	var products []models.Product
	if err := query.
		Order(sortBy + " " + sortOrder).
		Offset(offset).
		Limit(params.PerPage).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Featured returns the newest active, in-stock products.
func (r *GormProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("stock > 0 AND is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// UpsertBySlug creates the product or updates the existing row with the same
// slug. Used by the CSV importer.
func (r *GormProductRepository) UpsertBySlug(ctx context.Context, product *models.Product) error {
	var existing models.Product
	err := r.db.WithContext(ctx).Where("slug = ?", product.Slug).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(product).Error
	}
	if err != nil {
		return err
	}

	product.ID = existing.ID
	return r.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"name":         product.Name,
		"description":  product.Description,
		"manufacturer": product.Manufacturer,
		"price":        product.Price,
		"stock":        product.Stock,
	}).Error
}

func (r *GormProductRepository) ReplaceCategories(ctx context.Context, product *models.Product, categories []models.Category) error {
	return r.db.WithContext(ctx).Model(product).Association("Categories").Replace(categories)
}

// DecrementStock performs a conditional decrement so stock can never go
// negative under concurrent checkouts. Zero rows affected means the product
// is gone or the remaining stock is smaller than the requested quantity.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock restores stock during cancellation. Zero rows affected means
// the product row no longer exists, which the caller treats as fatal.
func (r *GormProductRepository) IncrementStock(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
