package wishlist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

func newService(t *testing.T) (*Service, *store.Buckets) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	buckets := store.NewBuckets(store.NewMemory(), log)
	return New(buckets, log), buckets
}

func TestToggleTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	added, err := svc.Toggle(ctx, "u1", "7")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, svc.Contains(ctx, "u1", "7"))

	added, err = svc.Toggle(ctx, "u1", "7")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, svc.Contains(ctx, "u1", "7"))
	assert.Empty(t, svc.IDs(ctx, "u1"))
}

func TestWishlistsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Toggle(ctx, "u1", "7")
	require.NoError(t, err)

	assert.False(t, svc.Contains(ctx, "u2", "7"))
	assert.Empty(t, svc.IDs(ctx, "u2"))

	// u2 toggling the same product does not remove u1's entry.
	_, err = svc.Toggle(ctx, "u2", "7")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u2", "7")
	require.NoError(t, err)
	assert.True(t, svc.Contains(ctx, "u1", "7"))
}

func TestListCrossReferencesCatalog(t *testing.T) {
	ctx := context.Background()
	svc, buckets := newService(t)

	products := []models.Product{
		{ID: "1", Title: "Kept", Price: decimal.NewFromInt(10)},
		{ID: "2", Title: "Other", Price: decimal.NewFromInt(20)},
	}
	require.NoError(t, buckets.Save(ctx, store.BucketProducts, products))

	_, err := svc.Toggle(ctx, "u1", "1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u1", "gone")
	require.NoError(t, err)

	saved := svc.List(ctx, "u1")
	require.Len(t, saved, 1, "ids without a live product are skipped")
	assert.Equal(t, "Kept", saved[0].Title)

	// The dangling entry is skipped, not pruned.
	assert.Equal(t, []string{"1", "gone"}, svc.IDs(ctx, "u1"))
}
