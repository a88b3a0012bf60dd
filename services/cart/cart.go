package cart

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

// ErrItemNotFound is returned when removing or resizing a line the user
// does not have.
var ErrItemNotFound = errors.New("cart item not found")

// Service owns the cart bucket. The bucket spans all users; every
// operation reads the whole bucket, merges this user's lines and
// rewrites it, mirroring the storage contract it replaces.
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

func (s *Service) allLines(ctx context.Context) []models.CartItem {
	var lines []models.CartItem
	s.buckets.Load(ctx, store.BucketCart, &lines)
	return lines
}

func split(lines []models.CartItem, userID string) (mine, others []models.CartItem) {
	for _, line := range lines {
		if line.UserID == userID {
			mine = append(mine, line)
		} else {
			others = append(others, line)
		}
	}
	return mine, others
}

func (s *Service) write(ctx context.Context, mine, others []models.CartItem) error {
	return s.buckets.Save(ctx, store.BucketCart, append(others, mine...))
}

// Items returns the user's lines in insertion order.
func (s *Service) Items(ctx context.Context, userID string) []models.CartItem {
	mine, _ := split(s.allLines(ctx), userID)
	return mine
}

// AddItem puts one unit of the product in the user's cart. A repeat add
// of the same product bumps the existing line instead of creating a
// second one.
func (s *Service) AddItem(ctx context.Context, userID string, p models.Product) error {
	mine, others := split(s.allLines(ctx), userID)
	for i, line := range mine {
		if line.Product.ID == p.ID {
			mine[i].Quantity++
			return s.write(ctx, mine, others)
		}
	}
	mine = append(mine, models.CartItem{Product: p, Quantity: 1, UserID: userID})
	return s.write(ctx, mine, others)
}

// SetQuantity overwrites a line's quantity. Zero or below removes the
// line.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}
	mine, others := split(s.allLines(ctx), userID)
	for i, line := range mine {
		if line.Product.ID == productID {
			mine[i].Quantity = qty
			return s.write(ctx, mine, others)
		}
	}
	return ErrItemNotFound
}

// RemoveItem deletes the line unconditionally.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) error {
	mine, others := split(s.allLines(ctx), userID)
	kept := mine[:0]
	for _, line := range mine {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(mine) {
		return ErrItemNotFound
	}
	return s.write(ctx, kept, others)
}

// Total sums price times quantity over this user's lines only.
func (s *Service) Total(ctx context.Context, userID string) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Items(ctx, userID) {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Clear drops every line the user has, leaving other users' lines alone.
func (s *Service) Clear(ctx context.Context, userID string) error {
	_, others := split(s.allLines(ctx), userID)
	return s.write(ctx, nil, others)
}
