package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService is the single path through which stock values change.
// Every mutation commits together with exactly one InventoryLog row
// recording the pre/post values — neither write survives without the other.
type InventoryService interface {
	CreateInventory(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	GetInventory(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error)
	ListInventory(ctx context.Context) ([]dto.InventoryResponse, error)

	// AdjustStock sets an absolute stock value and records the audit row.
	AdjustStock(ctx context.Context, id uuid.UUID, newStock int, reason string) (*dto.InventoryResponse, error)

	ListLowStock(ctx context.Context, threshold int) ([]dto.LowStockItem, error)
	ListLogs(ctx context.Context, inventoryID *uuid.UUID) ([]dto.InventoryLogResponse, error)

	// DebitStockTx is called inside a sale transaction — it performs the
	// conditional one-unit debit, writes the audit row (reason=sale), and
	// returns the post-debit stock. ErrOutOfStock when no unit was available.
	DebitStockTx(tx *gorm.DB, inventoryID uuid.UUID) (int, error)
}

type inventoryService struct {
	repo    repository.InventoryRepository
	logRepo repository.InventoryLogRepository
}

func NewInventoryService(repo repository.InventoryRepository, logRepo repository.InventoryLogRepository) InventoryService {
	return &inventoryService{repo: repo, logRepo: logRepo}
}

func (s *inventoryService) CreateInventory(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id is not a valid UUID", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock", ErrNegativeStock)
	}
	// One active inventory row per active product.
	if _, err := s.repo.FindByProductID(ctx, productID); err == nil {
		return nil, fmt.Errorf("%w: product already has an inventory row", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv := &model.Inventory{ProductID: productID, Stock: req.Stock}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inventoryToResponse(inv), nil
}

func (s *inventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "inventory")
	}
	return inventoryToResponse(inv), nil
}

func (s *inventoryService) ListInventory(ctx context.Context) ([]dto.InventoryResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *inventoryToResponse(&rows[i]))
	}
	return out, nil
}

// AdjustStock validates before touching the store, then commits the stock
// write and its audit row as one unit. The write is conditional on the stock
// value read at the start of the transaction, so two racing adjusters cannot
// both win from the same stale read.
func (s *inventoryService) AdjustStock(ctx context.Context, id uuid.UUID, newStock int, reason string) (*dto.InventoryResponse, error) {
	r := model.ChangeReason(reason)
	if reason == "" {
		r = model.ReasonManualAdjustment
	}
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReason, reason)
	}
	if newStock < 0 {
		return nil, fmt.Errorf("%w: requested %d", ErrNegativeStock, newStock)
	}

	var inv *model.Inventory
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		inv, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return notFound(err, "inventory")
		}

		ok, err := s.repo.SetStockTx(tx, id, inv.Stock, newStock)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: stock changed concurrently, retry", ErrConflict)
		}

		log := &model.InventoryLog{
			InventoryID: id,
			OldStock:    inv.Stock,
			NewStock:    newStock,
			Reason:      r,
			ChangedAt:   time.Now().UTC(),
		}
		if err := s.logRepo.CreateTx(tx, log); err != nil {
			return err
		}
		inv.Stock = newStock
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return inventoryToResponse(inv), nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, threshold int) ([]dto.LowStockItem, error) {
	rows, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(rows))
	for _, inv := range rows {
		name := ""
		if inv.Product != nil {
			name = inv.Product.Name
		}
		items = append(items, dto.LowStockItem{
			InventoryID: inv.ID.String(),
			ProductID:   inv.ProductID.String(),
			ProductName: name,
			Stock:       inv.Stock,
		})
	}
	return items, nil
}

func (s *inventoryService) ListLogs(ctx context.Context, inventoryID *uuid.UUID) ([]dto.InventoryLogResponse, error) {
	logs, err := s.logRepo.List(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:          l.ID.String(),
			InventoryID: l.InventoryID.String(),
			OldStock:    l.OldStock,
			NewStock:    l.NewStock,
			Reason:      string(l.Reason),
			ChangedAt:   l.ChangedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *inventoryService) DebitStockTx(tx *gorm.DB, inventoryID uuid.UUID) (int, error) {
	ok, err := s.repo.DebitStockTx(tx, inventoryID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrOutOfStock
	}

	// Re-read inside the transaction: the post-debit value is exact, so the
	// audit row's old/new pair is exact too, even under concurrent debits.
	inv, err := s.repo.FindByIDTx(tx, inventoryID)
	if err != nil {
		return 0, err
	}
	log := &model.InventoryLog{
		InventoryID: inventoryID,
		OldStock:    inv.Stock + 1,
		NewStock:    inv.Stock,
		Reason:      model.ReasonSale,
		ChangedAt:   time.Now().UTC(),
	}
	if err := s.logRepo.CreateTx(tx, log); err != nil {
		return 0, err
	}
	return inv.Stock, nil
}

func inventoryToResponse(inv *model.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:        inv.ID.String(),
		ProductID: inv.ProductID.String(),
		Stock:     inv.Stock,
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt: inv.UpdatedAt.Format(time.RFC3339),
	}
}

// notFound maps a missing-row error to ErrNotFound, passing through anything
// that is a genuine store failure.
func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return err
}
