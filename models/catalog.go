package models

// Catalog groups products for browsing. Products reference the catalog; they
// are not physically contained by it.
type Catalog struct {
	BaseModel
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	Products    []Product `gorm:"foreignKey:CatalogID" json:"-"`
}

// CatalogView is the projection served to clients and stored in the cache.
type CatalogView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCatalogRequest is the payload for POST /catalogs.
type CreateCatalogRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateCatalogRequest is the payload for PUT /catalogs/:id.
type UpdateCatalogRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// ToView projects the catalog for caching and API responses.
func (c *Catalog) ToView() *CatalogView {
	return &CatalogView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
