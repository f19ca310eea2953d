package services

import (
	"context"
	"testing"
	"time"

	"github.com/denavigator/Brand-app/config"
	"github.com/denavigator/Brand-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func TestGormOrderStore_CreateOrder(t *testing.T) {
	store := NewGormOrderStore(setupStoreTestDB(t))
	ctx := context.Background()

	order := models.Order{
		Name:        "A",
		Email:       "a@x.com",
		Product:     "Logo",
		PackageType: "pro",
		LogoPath:    strPtr("123.png"),
	}

	require.NoError(t, store.CreateOrder(ctx, &order))
	assert.Len(t, order.ID, 24, "Store-assigned id should be ObjectID hex")
	assert.Equal(t, "pending", order.Status)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestGormOrderStore_DistinctIDsForIdenticalOrders(t *testing.T) {
	store := NewGormOrderStore(setupStoreTestDB(t))
	ctx := context.Background()

	first := models.Order{Name: "A", Email: "a@x.com", PackageType: "pro"}
	second := models.Order{Name: "A", Email: "a@x.com", PackageType: "pro"}

	require.NoError(t, store.CreateOrder(ctx, &first))
	require.NoError(t, store.CreateOrder(ctx, &second))

	assert.NotEqual(t, first.ID, second.ID, "Identical submissions create distinct orders")

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGormOrderStore_GetOrderByID(t *testing.T) {
	store := NewGormOrderStore(setupStoreTestDB(t))
	ctx := context.Background()

	order := models.Order{
		Name:        "B",
		Email:       "b@x.com",
		PackageType: "premium",
		MockupPath:  strPtr("mockup-1.png"),
	}
	require.NoError(t, store.CreateOrder(ctx, &order))

	found, err := store.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, "b@x.com", found.Email)
	require.NotNil(t, found.MockupPath)
	assert.Equal(t, "mockup-1.png", *found.MockupPath)
	assert.Nil(t, found.LogoPath)
}

func TestGormOrderStore_GetOrderByID_NotFound(t *testing.T) {
	store := NewGormOrderStore(setupStoreTestDB(t))

	_, err := store.GetOrderByID(context.Background(), "65f0a1b2c3d4e5f6a7b8c9d0")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGormOrderStore_ListOrdersNewestFirst(t *testing.T) {
	store := NewGormOrderStore(setupStoreTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	oldest := models.Order{Name: "old", CreatedAt: base}
	middle := models.Order{Name: "mid", CreatedAt: base.Add(time.Hour)}
	newest := models.Order{Name: "new", CreatedAt: base.Add(2 * time.Hour)}

	// Insert out of order to make the sort do the work
	require.NoError(t, store.CreateOrder(ctx, &middle))
	require.NoError(t, store.CreateOrder(ctx, &newest))
	require.NoError(t, store.CreateOrder(ctx, &oldest))

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "new", orders[0].Name)
	assert.Equal(t, "mid", orders[1].Name)
	assert.Equal(t, "old", orders[2].Name)
}

func TestInitOrderStore_GormBackend(t *testing.T) {
	originalDB := config.GetDB()
	originalStore := GetOrderStore()
	t.Cleanup(func() {
		config.SetDB(originalDB)
		SetOrderStore(originalStore)
	})

	config.SetDB(setupStoreTestDB(t))

	store, err := InitOrderStore()
	require.NoError(t, err)
	assert.IsType(t, &GormOrderStore{}, store)
	assert.Same(t, store, GetOrderStore())
}

func TestInitOrderStore_NoBackend(t *testing.T) {
	originalDB := config.GetDB()
	originalStore := GetOrderStore()
	t.Cleanup(func() {
		config.SetDB(originalDB)
		SetOrderStore(originalStore)
	})

	config.SetDB(nil)

	_, err := InitOrderStore()
	assert.Error(t, err)
}
