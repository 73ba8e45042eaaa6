package repository

import (
	"context"
	"testing"

	"shopstock/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedInventory(t *testing.T, db *gorm.DB, name string, stock int) *model.Inventory {
	t.Helper()
	product := &model.Product{Name: name, Price: decimal.RequireFromString("1.00")}
	require.NoError(t, db.Create(product).Error)
	inv := &model.Inventory{ProductID: product.ID, Stock: stock}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func TestDebitStockTxStopsAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	inv := seedInventory(t, db, "Microwave", 1)

	ok, err := repo.DebitStockTx(db, inv.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Stock is now 0: the guarded update must match no row.
	ok, err = repo.DebitStockTx(db, inv.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	var got model.Inventory
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 0, got.Stock, "stock never goes below zero")
}

func TestDebitStockTxIgnoresSoftDeletedRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	inv := seedInventory(t, db, "Microwave", 5)
	require.NoError(t, db.Model(inv).Update("deleted", true).Error)

	ok, err := repo.DebitStockTx(db, inv.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetStockTxOptimisticCheck(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	inv := seedInventory(t, db, "Microwave", 10)

	ok, err := repo.SetStockTx(db, inv.ID, 10, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	// A writer holding the stale pre-write value loses.
	ok, err = repo.SetStockTx(db, inv.ID, 10, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	var got model.Inventory
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 4, got.Stock)
}

func TestLowStockExcludesDeletedProducts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)

	low := seedInventory(t, db, "Python Book", 2)
	seedInventory(t, db, "Smartphone", 50)
	orphan := seedInventory(t, db, "Discontinued", 1)
	require.NoError(t, db.Model(&model.Product{}).
		Where("id = ?", orphan.ProductID).Update("deleted", true).Error)

	rows, err := repo.LowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, low.ID, rows[0].ID)
	require.NotNil(t, rows[0].Product)
	assert.Equal(t, "Python Book", rows[0].Product.Name)
}

func TestFindByProductIDSkipsDeletedInventory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db)
	inv := seedInventory(t, db, "Microwave", 5)
	require.NoError(t, db.Model(inv).Update("deleted", true).Error)

	_, err := repo.FindByProductID(context.Background(), inv.ProductID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
