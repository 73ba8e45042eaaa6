package service

import (
	"context"
	"fmt"
	"time"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"
	"shopstock/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Every sale moves exactly one unit. Multi-line carts are out of scope for
// this ledger.
const saleQuantity = 1

// SaleService composes the stock debit (via the inventory service) with the
// creation of a priced sale row, as one atomic unit. A failure at any step
// rolls the whole transaction back: no sale without its debit, no debit
// without its sale.
type SaleService interface {
	CreateSale(ctx context.Context, productID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	inventory   InventoryService
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
	dispatcher  *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	inventory InventoryService,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:        repo,
		inventory:   inventory,
		invRepo:     invRepo,
		productRepo: productRepo,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *saleService) CreateSale(ctx context.Context, productID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	channel := model.SalesChannel(req.Channel)
	if req.Channel == "" {
		channel = model.ChannelOther
	}
	if !channel.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %q", ErrValidation, req.Channel)
	}

	// Pre-flight outside the transaction; the stock check itself happens
	// inside, as a conditional single-row debit.
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, notFound(err, "product")
	}

	var sale model.Sale
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		inv, err := s.invRepo.FindByProductIDTx(tx, product.ID)
		if err != nil {
			return notFound(err, "inventory")
		}

		// Conditional debit + audit row, both inside this transaction.
		// ErrOutOfStock aborts before anything is written.
		if _, err := s.inventory.DebitStockTx(tx, inv.ID); err != nil {
			return err
		}

		sale = model.Sale{
			ProductID:     product.ID,
			Quantity:      saleQuantity,
			TotalPrice:    product.Price.Mul(decimal.NewFromInt(saleQuantity)),
			SaleDate:      time.Now().UTC(),
			Channel:       channel,
			CustomerEmail: req.CustomerEmail,
		}
		return s.repo.CreateTx(tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt delivery is post-commit and best-effort: a queue hiccup must
	// never fail a committed sale.
	if s.dispatcher != nil && req.CustomerEmail != nil && *req.CustomerEmail != "" {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{
			SaleID:        sale.ID.String(),
			CustomerEmail: *req.CustomerEmail,
		})
	}

	resp := saleToResponse(&sale)
	resp.ProductName = product.Name
	return resp, nil
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "sale")
	}
	resp := saleToResponse(sale)
	if sale.Product != nil {
		resp.ProductName = sale.Product.Name
	}
	return resp, nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp := saleToResponse(&sales[i])
		if sales[i].Product != nil {
			resp.ProductName = sales[i].Product.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID.String(),
		ProductID:     s.ProductID.String(),
		Quantity:      s.Quantity,
		TotalPrice:    s.TotalPrice,
		SaleDate:      s.SaleDate.Format(time.RFC3339),
		Channel:       string(s.Channel),
		CustomerEmail: s.CustomerEmail,
	}
}
