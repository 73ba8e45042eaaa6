package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryLog is the append-only audit trail of stock changes. OldStock and
// NewStock are the exact pre/post values of the mutation that produced the
// row; rows are never updated after creation.
type InventoryLog struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	InventoryID uuid.UUID    `gorm:"type:uuid;not null;index"`
	OldStock    int          `gorm:"not null"`
	NewStock    int          `gorm:"not null"`
	Reason      ChangeReason `gorm:"type:varchar(32);not null"`
	ChangedAt   time.Time    `gorm:"not null"`
	Deleted     bool         `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Inventory *Inventory `gorm:"foreignKey:InventoryID"`
}

func (l *InventoryLog) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
