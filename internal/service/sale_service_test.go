package service

import (
	"context"
	"testing"

	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type saleFixture struct {
	db      *gorm.DB
	svc     SaleService
	invSvc  InventoryService
	product *model.Product
	inv     *model.Inventory
}

// newSaleFixture seeds one product with the given price and stock and wires
// the real repositories against SQLite, so transaction semantics are the
// ones the production path uses.
func newSaleFixture(t *testing.T, price string, stock int) *saleFixture {
	t.Helper()
	db := setupTestDB(t)

	product := &model.Product{Name: "Smartphone", Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(product).Error)
	inv := &model.Inventory{ProductID: product.ID, Stock: stock}
	require.NoError(t, db.Create(inv).Error)

	saleRepo := repository.NewSaleRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)
	productRepo := repository.NewProductRepository(db)
	invSvc := NewInventoryService(invRepo, logRepo)

	return &saleFixture{
		db:      db,
		svc:     NewSaleService(saleRepo, invSvc, invRepo, productRepo, nil),
		invSvc:  invSvc,
		product: product,
		inv:     inv,
	}
}

func (f *saleFixture) currentStock(t *testing.T) int {
	t.Helper()
	var inv model.Inventory
	require.NoError(t, f.db.First(&inv, "id = ?", f.inv.ID).Error)
	return inv.Stock
}

func TestCreateSaleDebitsStockAndWritesAudit(t *testing.T) {
	f := newSaleFixture(t, "10.00", 1)

	resp, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{
		Channel: "retail",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Quantity)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("10.00")),
		"total is unit price times quantity, got %s", resp.TotalPrice)
	assert.Equal(t, "retail", resp.Channel)
	assert.Equal(t, "Smartphone", resp.ProductName)

	assert.Equal(t, 0, f.currentStock(t))

	var logs []model.InventoryLog
	require.NoError(t, f.db.Where("inventory_id = ?", f.inv.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].OldStock)
	assert.Equal(t, 0, logs[0].NewStock)
	assert.Equal(t, model.ReasonSale, logs[0].Reason)
}

func TestCreateSaleOutOfStock(t *testing.T) {
	f := newSaleFixture(t, "10.00", 1)

	_, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
	require.NoError(t, err)

	_, err = f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, ErrOutOfStock)

	// The failed attempt left nothing behind: stock still 0, one sale, one log.
	assert.Equal(t, 0, f.currentStock(t))

	var saleCount, logCount int64
	require.NoError(t, f.db.Model(&model.Sale{}).Count(&saleCount).Error)
	require.NoError(t, f.db.Model(&model.InventoryLog{}).Count(&logCount).Error)
	assert.EqualValues(t, 1, saleCount)
	assert.EqualValues(t, 1, logCount)
}

func TestCreateSaleDefaultsChannelToOther(t *testing.T) {
	f := newSaleFixture(t, "5.50", 3)

	resp, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(model.ChannelOther), resp.Channel)
}

func TestCreateSaleRejectsUnknownChannel(t *testing.T) {
	f := newSaleFixture(t, "5.50", 3)

	_, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{
		Channel: "carrier_pigeon",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 3, f.currentStock(t))
}

func TestCreateSaleProductNotFound(t *testing.T) {
	f := newSaleFixture(t, "5.50", 3)

	_, err := f.svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSaleSoftDeletedProduct(t *testing.T) {
	f := newSaleFixture(t, "5.50", 3)
	require.NoError(t, f.db.Model(f.product).Update("deleted", true).Error)

	_, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, f.currentStock(t))
}

func TestCreateSaleSequentialUntilEmpty(t *testing.T) {
	f := newSaleFixture(t, "2.00", 3)

	for i := 0; i < 3; i++ {
		_, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
		require.NoError(t, err, "sale %d should succeed", i+1)
	}
	_, err := f.svc.CreateSale(context.Background(), f.product.ID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, ErrOutOfStock)

	assert.Equal(t, 0, f.currentStock(t))

	// Every successful debit left its own audit row, old/new pairs forming an
	// unbroken 3→2→1→0 chain.
	var logs []model.InventoryLog
	require.NoError(t, f.db.Where("inventory_id = ?", f.inv.ID).Order("new_stock DESC").Find(&logs).Error)
	require.Len(t, logs, 3)
	for i, l := range logs {
		assert.Equal(t, 3-i, l.OldStock)
		assert.Equal(t, 2-i, l.NewStock)
	}
}
