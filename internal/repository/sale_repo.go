package repository

import (
	"context"

	"shopstock/internal/dto"
	"shopstock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Product").
		Where("id = ? AND deleted = ?", id, false).First(&s).Error
	return &s, err
}

// List applies the optional filters; date bounds are inclusive and the
// category filter goes through the product join. Result order is whatever
// the store yields — callers needing order sort explicitly.
func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).Preload("Product").
		Where("sales.deleted = ?", false)

	if filter.StartDate != nil {
		q = q.Where("sale_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("sale_date <= ?", *filter.EndDate)
	}
	if filter.ProductID != nil {
		q = q.Where("sales.product_id = ?", *filter.ProductID)
	}
	if filter.CategoryID != nil {
		q = q.Joins("JOIN products ON products.id = sales.product_id").
			Where("products.category_id = ?", *filter.CategoryID)
	}

	var sales []model.Sale
	err := q.Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
