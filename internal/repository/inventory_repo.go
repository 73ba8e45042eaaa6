package repository

import (
	"context"

	"shopstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryRepository is the only write path to inventory rows. Stock
// mutations are conditional single-row updates whose affected-row count the
// caller must check — that is what makes concurrent debits safe without
// explicit locks.
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	CreateTx(tx *gorm.DB, inv *model.Inventory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Inventory, error)
	List(ctx context.Context) ([]model.Inventory, error)
	LowStock(ctx context.Context, threshold int) ([]model.Inventory, error)

	// Tx variants run inside a caller-owned transaction.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Inventory, error)
	FindByProductIDTx(tx *gorm.DB, productID uuid.UUID) (*model.Inventory, error)

	// DebitStockTx decrements stock by one iff the row is active and has at
	// least one unit. Returns false when no row qualified (out of stock, or
	// the row is missing/soft-deleted).
	DebitStockTx(tx *gorm.DB, id uuid.UUID) (bool, error)

	// SetStockTx writes newStock iff the row still holds oldStock (optimistic
	// check). Returns false when a concurrent writer got there first.
	SetStockTx(tx *gorm.DB, id uuid.UUID, oldStock, newStock int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) CreateTx(tx *gorm.DB, inv *model.Inventory) error {
	return tx.Create(inv).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).Preload("Product").
		Where("id = ? AND deleted = ?", id, false).First(&inv).Error
	return &inv, err
}

func (r *inventoryRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND deleted = ?", productID, false).First(&inv).Error
	return &inv, err
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	var rows []model.Inventory
	err := r.db.WithContext(ctx).Preload("Product").
		Where("deleted = ?", false).Find(&rows).Error
	return rows, err
}

// LowStock joins active inventory rows to their active products so the view
// can carry the product name.
func (r *inventoryRepo) LowStock(ctx context.Context, threshold int) ([]model.Inventory, error) {
	var rows []model.Inventory
	err := r.db.WithContext(ctx).Preload("Product").
		Joins("JOIN products ON products.id = inventory.product_id AND products.deleted = ?", false).
		Where("inventory.deleted = ? AND inventory.stock <= ?", false, threshold).
		Find(&rows).Error
	return rows, err
}

func (r *inventoryRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := tx.Where("id = ? AND deleted = ?", id, false).First(&inv).Error
	return &inv, err
}

func (r *inventoryRepo) FindByProductIDTx(tx *gorm.DB, productID uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := tx.Where("product_id = ? AND deleted = ?", productID, false).First(&inv).Error
	return &inv, err
}

func (r *inventoryRepo) DebitStockTx(tx *gorm.DB, id uuid.UUID) (bool, error) {
	res := tx.Model(&model.Inventory{}).
		Where("id = ? AND deleted = ? AND stock >= ?", id, false, 1).
		Update("stock", gorm.Expr("stock - ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *inventoryRepo) SetStockTx(tx *gorm.DB, id uuid.UUID, oldStock, newStock int) (bool, error) {
	res := tx.Model(&model.Inventory{}).
		Where("id = ? AND deleted = ? AND stock = ?", id, false, oldStock).
		Update("stock", newStock)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
