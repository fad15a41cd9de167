package model

// Catalog lookups. "Active" listings exclude rows with is_active = false,
// "all" listings do not.

type Product struct {
	Base
	Name     string `db:"name" json:"name"`
	Vendor   string `db:"vendor" json:"vendor"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type TreatedArea struct {
	Base
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type TreatmentCategory struct {
	Base
	Name     string `db:"name" json:"name"`
	Slug     string `db:"slug" json:"slug"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Vendor   string `json:"vendor"`
	IsActive *bool  `json:"is_active"`
}

type CreateTreatedAreaRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type CreateTreatmentCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required,slug"`
	IsActive *bool  `json:"is_active"`
}
