package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory holds the sellable stock count for one product. At most one
// active row exists per active product; stock never goes below zero.
// All mutations go through the inventory service so that every change
// leaves an InventoryLog row behind.
type Inventory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Stock     int       `gorm:"not null;default:0"`
	Deleted   bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (i *Inventory) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName keeps the singular collection name used by the original schema.
func (Inventory) TableName() string { return "inventory" }
