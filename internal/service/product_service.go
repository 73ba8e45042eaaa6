package service

import (
	"context"
	"fmt"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo    repository.ProductRepository
	invRepo repository.InventoryRepository
}

func NewProductService(repo repository.ProductRepository, invRepo repository.InventoryRepository) ProductService {
	return &productService{repo: repo, invRepo: invRepo}
}

// CreateProduct creates the product together with its inventory row, in one
// transaction. A product without an inventory row could never be sold.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.InitialStock < 0 {
		return nil, fmt.Errorf("%w: initial_stock", ErrNegativeStock)
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category_id is not a valid UUID", ErrValidation)
		}
		categoryID = &id
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  categoryID,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, product); err != nil {
			return err
		}
		return s.invRepo.CreateTx(tx, &model.Inventory{
			ProductID: product.ID,
			Stock:     req.InitialStock,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(product), nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return productToResponse(product), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "product")
	}
	return s.repo.SoftDelete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		resp.CategoryID = &id
	}
	if p.Category != nil && !p.Category.Deleted {
		resp.Category = categoryToResponse(p.Category)
	}
	return resp
}
