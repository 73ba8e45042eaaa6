package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price" validate:"min=0"`
	Description *string         `json:"description"`
	CategoryID  *string         `json:"category_id"`
	// InitialStock seeds the product's inventory row (0 when omitted).
	InitialStock int `json:"initial_stock" validate:"min=0"`
}

type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Price       decimal.Decimal   `json:"price"`
	Description *string           `json:"description"`
	CategoryID  *string           `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}
