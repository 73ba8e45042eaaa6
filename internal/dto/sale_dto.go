package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	Channel       string  `json:"channel"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
}

type SaleResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	SaleDate      string          `json:"sale_date"`
	Channel       string          `json:"channel"`
	CustomerEmail *string         `json:"customer_email,omitempty"`
}

// SaleFilter narrows ListSales. Date bounds are inclusive; CategoryID
// filters through the product → category join.
type SaleFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  *uuid.UUID
	CategoryID *uuid.UUID
}
