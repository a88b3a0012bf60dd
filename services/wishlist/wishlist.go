package wishlist

import (
	"context"
	"log/slog"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

// Service owns the wishlist bucket. Entries are scoped per user, the
// same way cart lines and purchases are.
type Service struct {
	buckets *store.Buckets
	log     *slog.Logger
}

func New(buckets *store.Buckets, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{buckets: buckets, log: log}
}

func (s *Service) entries(ctx context.Context) []models.WishlistEntry {
	var entries []models.WishlistEntry
	s.buckets.Load(ctx, store.BucketWishlist, &entries)
	return entries
}

// Toggle adds the product to the user's wishlist if absent and removes
// it if present. It reports whether the product ended up wishlisted.
// Toggling twice always restores the starting state.
func (s *Service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	entries := s.entries(ctx)
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.UserID == userID && e.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		kept = append(kept, models.WishlistEntry{UserID: userID, ProductID: productID})
	}
	if err := s.buckets.Save(ctx, store.BucketWishlist, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// Contains reports whether the user has wishlisted the product.
func (s *Service) Contains(ctx context.Context, userID, productID string) bool {
	for _, e := range s.entries(ctx) {
		if e.UserID == userID && e.ProductID == productID {
			return true
		}
	}
	return false
}

// IDs returns the user's wishlisted product ids in insertion order.
func (s *Service) IDs(ctx context.Context, userID string) []string {
	var ids []string
	for _, e := range s.entries(ctx) {
		if e.UserID == userID {
			ids = append(ids, e.ProductID)
		}
	}
	return ids
}

// List cross-references the user's wishlist against the current catalog.
// Entries whose product has been deleted are skipped, not pruned.
func (s *Service) List(ctx context.Context, userID string) []models.Product {
	var products []models.Product
	s.buckets.Load(ctx, store.BucketProducts, &products)

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var saved []models.Product
	for _, id := range s.IDs(ctx, userID) {
		if p, ok := byID[id]; ok {
			saved = append(saved, p)
		}
	}
	return saved
}
