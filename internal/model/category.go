package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies products. The reference is weak: deleting a category
// does not cascade to its products.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	Deleted     bool `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName overrides GORM's default pluralization (categorys → categories).
func (Category) TableName() string { return "categories" }
