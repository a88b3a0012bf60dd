package order

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/services/cart"
	"github.com/Rithanya77-05/ecofinds/store"
)

func newServices(t *testing.T) (*Service, *cart.Service, *store.Buckets) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	buckets := store.NewBuckets(store.NewMemory(), log)
	carts := cart.New(buckets, log)
	return New(buckets, carts, log), carts, buckets
}

func product(id string, price int64) models.Product {
	return models.Product{
		ID:       id,
		Title:    "Item " + id,
		Category: models.CategoryToys,
		Price:    decimal.NewFromInt(price),
		SellerID: "some-seller",
	}
}

func TestCheckoutSnapshotsCart(t *testing.T) {
	ctx := context.Background()
	orders, carts, _ := newServices(t)

	require.NoError(t, carts.AddItem(ctx, "u1", product("p1", 100)))
	require.NoError(t, carts.SetQuantity(ctx, "u1", "p1", 3))
	require.NoError(t, carts.AddItem(ctx, "u1", product("p2", 50)))

	wantTotal := carts.Total(ctx, "u1")
	purchase, err := orders.Checkout(ctx, "u1")
	require.NoError(t, err)

	assert.Len(t, purchase.Products, 2, "one snapshot per cart line")
	assert.True(t, purchase.Total.Equal(wantTotal))
	assert.True(t, purchase.Total.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, "u1", purchase.UserID)
	assert.NotEmpty(t, purchase.ID)
	assert.False(t, purchase.Date.IsZero())

	assert.Empty(t, carts.Items(ctx, "u1"), "cart is empty right after checkout")

	history := orders.History(ctx, "u1")
	require.Len(t, history, 1)
	assert.Equal(t, purchase.ID, history[0].ID)
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	ctx := context.Background()
	orders, carts, buckets := newServices(t)

	_, err := orders.Checkout(ctx, "u1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.History(ctx, "u1"))
	assert.False(t, buckets.Exists(ctx, store.BucketPurchases), "purchase bucket unchanged")
	assert.Empty(t, carts.Items(ctx, "u1"))
}

func TestCheckoutDoesNotTouchOtherCarts(t *testing.T) {
	ctx := context.Background()
	orders, carts, _ := newServices(t)

	require.NoError(t, carts.AddItem(ctx, "u1", product("p1", 100)))
	require.NoError(t, carts.AddItem(ctx, "u2", product("p2", 50)))

	_, err := orders.Checkout(ctx, "u1")
	require.NoError(t, err)

	assert.Len(t, carts.Items(ctx, "u2"), 1)
	assert.Empty(t, orders.History(ctx, "u2"))
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	orders, carts, _ := newServices(t)

	require.NoError(t, carts.AddItem(ctx, "u1", product("p1", 100)))
	first, err := orders.Checkout(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, carts.AddItem(ctx, "u1", product("p2", 50)))
	second, err := orders.Checkout(ctx, "u1")
	require.NoError(t, err)

	history := orders.History(ctx, "u1")
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestPurchaseSnapshotSurvivesListingEdits(t *testing.T) {
	ctx := context.Background()
	orders, carts, buckets := newServices(t)

	p := product("p1", 100)
	require.NoError(t, carts.AddItem(ctx, "u1", p))
	_, err := orders.Checkout(ctx, "u1")
	require.NoError(t, err)

	// Mutate the catalog afterwards; the purchase keeps its copy.
	p.Title = "Renamed"
	p.Price = decimal.NewFromInt(999)
	require.NoError(t, buckets.Save(ctx, store.BucketProducts, []models.Product{p}))

	history := orders.History(ctx, "u1")
	require.Len(t, history, 1)
	assert.Equal(t, "Item p1", history[0].Products[0].Title)
	assert.True(t, history[0].Total.Equal(decimal.NewFromInt(100)))
}
