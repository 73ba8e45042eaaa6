package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale records one priced transaction. TotalPrice is fixed at creation time
// (quantity × unit price when the sale happened) and is never recomputed.
// The product reference stays valid even after the product is soft-deleted.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      int             `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SaleDate      time.Time       `gorm:"not null;index"`
	Channel       SalesChannel    `gorm:"type:varchar(32);not null"`
	CustomerEmail *string
	Deleted       bool `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (s *Sale) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
