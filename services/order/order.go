package order

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/services/cart"
	"github.com/Rithanya77-05/ecofinds/store"
)

// ErrEmptyCart means checkout was attempted with no lines; nothing is
// written in that case.
var ErrEmptyCart = errors.New("cart is empty")

// Service converts carts into purchase records.
type Service struct {
	buckets *store.Buckets
	carts   *cart.Service
	log     *slog.Logger
}

func New(buckets *store.Buckets, carts *cart.Service, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{buckets: buckets, carts: carts, log: log}
}

// Checkout snapshots the user's cart into an immutable purchase, appends
// it to the purchases bucket and clears the user's cart lines. The two
// writes are sequential with no rollback: a crash in between leaves the
// purchase recorded and the cart intact, which a later checkout simply
// repeats.
func (s *Service) Checkout(ctx context.Context, userID string) (models.Purchase, error) {
	lines := s.carts.Items(ctx, userID)
	if len(lines) == 0 {
		return models.Purchase{}, ErrEmptyCart
	}

	// One product snapshot per line; quantities are folded into the
	// total only, matching the historical purchase format.
	products := make([]models.Product, 0, len(lines))
	for _, line := range lines {
		products = append(products, line.Product)
	}

	purchase := models.Purchase{
		ID:       uuid.NewString(),
		Products: products,
		Total:    s.carts.Total(ctx, userID),
		Date:     time.Now(),
		UserID:   userID,
	}

	var purchases []models.Purchase
	s.buckets.Load(ctx, store.BucketPurchases, &purchases)
	if err := s.buckets.Save(ctx, store.BucketPurchases, append(purchases, purchase)); err != nil {
		return models.Purchase{}, err
	}
	if err := s.carts.Clear(ctx, userID); err != nil {
		return models.Purchase{}, err
	}

	s.log.Info("purchase completed",
		"purchase_id", purchase.ID,
		"user_id", userID,
		"items", len(products),
		"total", purchase.Total.String())
	return purchase, nil
}

// History returns the user's purchases, newest first.
func (s *Service) History(ctx context.Context, userID string) []models.Purchase {
	var purchases []models.Purchase
	s.buckets.Load(ctx, store.BucketPurchases, &purchases)

	var mine []models.Purchase
	for _, p := range purchases {
		if p.UserID == userID {
			mine = append(mine, p)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine
}
