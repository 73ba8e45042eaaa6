package repository

import (
	"context"

	"shopstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryLogRepository appends and reads audit rows. There is no update
// path: log rows are immutable history.
type InventoryLogRepository interface {
	CreateTx(tx *gorm.DB, l *model.InventoryLog) error
	List(ctx context.Context, inventoryID *uuid.UUID) ([]model.InventoryLog, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) CreateTx(tx *gorm.DB, l *model.InventoryLog) error {
	return tx.Create(l).Error
}

func (r *inventoryLogRepo) List(ctx context.Context, inventoryID *uuid.UUID) ([]model.InventoryLog, error) {
	q := r.db.WithContext(ctx).Where("deleted = ?", false)
	if inventoryID != nil {
		q = q.Where("inventory_id = ?", *inventoryID)
	}
	var logs []model.InventoryLog
	err := q.Order("changed_at DESC").Find(&logs).Error
	return logs, err
}
