package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a catalog item. Price is fixed-point decimal(18,2); Properties
// is an arbitrary JSON bag stored as JSONB.
type Product struct {
	BaseModel
	Name       string          `gorm:"size:200;not null" json:"name"`
	Sku        string          `gorm:"size:50;not null" json:"sku"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	Properties datatypes.JSON  `gorm:"type:jsonb" json:"properties,omitempty"`
	CatalogID  *uint           `json:"catalog_id,omitempty"`
	Catalog    *Catalog        `gorm:"foreignKey:CatalogID" json:"-"`
}

// ProductView is the projection served to clients and stored in the cache.
type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Sku         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	CatalogID   *uint           `json:"catalog_id,omitempty"`
	CatalogName string          `json:"catalog_name,omitempty"`
}

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required,max=200"`
	Sku        string          `json:"sku" binding:"required,max=50"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Properties json.RawMessage `json:"properties"`
	CatalogID  *uint           `json:"catalog_id"`
}

// UpdateProductRequest is the payload for PUT /products/:id.
type UpdateProductRequest struct {
	Name       string          `json:"name" binding:"required,max=200"`
	Sku        string          `json:"sku" binding:"required,max=50"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Properties json.RawMessage `json:"properties"`
	CatalogID  *uint           `json:"catalog_id"`
}

// ToView projects the product for caching and API responses.
func (p *Product) ToView() *ProductView {
	view := &ProductView{
		ID:         p.ID,
		Name:       p.Name,
		Sku:        p.Sku,
		Price:      p.Price,
		Properties: json.RawMessage(p.Properties),
		CatalogID:  p.CatalogID,
	}
	if p.Catalog != nil {
		view.CatalogName = p.Catalog.Name
	}
	return view
}
