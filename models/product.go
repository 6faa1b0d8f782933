package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                   uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string          `gorm:"not null" json:"name"`
	Slug                 string          `gorm:"uniqueIndex;not null" json:"slug"`
	Description          string          `gorm:"type:text" json:"description"`
	Manufacturer         string          `json:"manufacturer"`
	Price                decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock                int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	ImageURL             string          `json:"image_url"`
	Unit                 string          `gorm:"default:'piece'" json:"unit"`
	RequiresPrescription bool            `gorm:"default:false" json:"requires_prescription"`
	IsActive             bool            `gorm:"default:true" json:"is_active"`
	Categories           []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductSnapshot is the denormalized copy of a product stored on an order
// item at purchase time. It is written once and never re-derived from the
// live product row.
type ProductSnapshot struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Description          string          `json:"description"`
	Manufacturer         string          `json:"manufacturer"`
	Price                decimal.Decimal `json:"price"`
	ImageURL             string          `json:"image_url"`
	Unit                 string          `json:"unit"`
	RequiresPrescription bool            `json:"requires_prescription"`
}

// Snapshot captures the product state for order history.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:                   p.ID,
		Name:                 p.Name,
		Slug:                 p.Slug,
		Description:          p.Description,
		Manufacturer:         p.Manufacturer,
		Price:                p.Price,
		ImageURL:             p.ImageURL,
		Unit:                 p.Unit,
		RequiresPrescription: p.RequiresPrescription,
	}
}
