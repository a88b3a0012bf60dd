package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

var (
	// ErrMissingRequiredField means a listing was submitted without a
	// title, price, category or image.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidImageType means the submitted image payload is not an image.
	ErrInvalidImageType = errors.New("please upload an image file")
	// ErrInvalidCategory means the category is not one of the fixed set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrNegativePrice guards the non-negative price invariant.
	ErrNegativePrice = errors.New("price must not be negative")
	// ErrProductNotFound is returned by Update and Delete for unknown ids.
	ErrProductNotFound = errors.New("product not found")
)

// Sort selects the feed ordering.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
)

// Filter narrows and orders the product feed. The zero value means
// everything, newest first.
type Filter struct {
	Search   string
	Category models.Category // empty means all categories
	Sort     Sort
}

// Input carries the editable fields of a listing form.
type Input struct {
	Title       string
	Description string
	Category    models.Category
	Price       decimal.Decimal
	Image       string
	SellerID    string
}

// Service owns the product bucket.
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

func (s *Service) all(ctx context.Context) []models.Product {
	var products []models.Product
	s.buckets.Load(ctx, store.BucketProducts, &products)
	return products
}

// List returns the products matching the filter. The search term matches
// the title or description case-insensitively; the category must match
// exactly when set.
func (s *Service) List(ctx context.Context, f Filter) []models.Product {
	products := s.all(ctx)

	filtered := make([]models.Product, 0, len(products))
	needle := strings.ToLower(f.Search)
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}
	return filtered
}

// Get looks a single product up by id.
func (s *Service) Get(ctx context.Context, id string) (models.Product, bool) {
	for _, p := range s.all(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" || in.Image == "" || in.Category == "" {
		return ErrMissingRequiredField
	}
	if !in.Category.Valid() {
		return ErrInvalidCategory
	}
	if in.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !looksLikeImage(in.Image) {
		return ErrInvalidImageType
	}
	return nil
}

// looksLikeImage accepts data URLs with an image mime type, hosted URLs
// (image hosts frequently serve without an extension) and local paths
// with a common image extension.
func looksLikeImage(image string) bool {
	if strings.HasPrefix(image, "data:") {
		return strings.HasPrefix(image, "data:image/")
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return true
	}
	trimmed := image
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	lower := strings.ToLower(trimmed)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Create validates the form input and appends a new listing.
func (s *Service) Create(ctx context.Context, in Input) (models.Product, error) {
	if err := validate(in); err != nil {
		return models.Product{}, err
	}
	product := models.Product{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Image:       in.Image,
		SellerID:    in.SellerID,
		CreatedAt:   time.Now(),
	}
	products := append(s.all(ctx), product)
	if err := s.buckets.Save(ctx, store.BucketProducts, products); err != nil {
		return models.Product{}, err
	}
	s.log.Info("listing created", "product_id", product.ID, "seller_id", product.SellerID)
	return product, nil
}

// Update overwrites the editable fields of an existing listing. The id
// and original creation time are preserved. Ownership is the caller's
// concern: the shell only offers edit on the session user's listings.
func (s *Service) Update(ctx context.Context, id string, in Input) (models.Product, error) {
	if err := validate(in); err != nil {
		return models.Product{}, err
	}
	products := s.all(ctx)
	for i, p := range products {
		if p.ID != id {
			continue
		}
		p.Title = in.Title
		p.Description = in.Description
		p.Category = in.Category
		p.Price = in.Price
		p.Image = in.Image
		products[i] = p
		if err := s.buckets.Save(ctx, store.BucketProducts, products); err != nil {
			return models.Product{}, err
		}
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a listing. Cart lines and purchase snapshots that
// reference it are untouched; they carry their own copies.
func (s *Service) Delete(ctx context.Context, id string) error {
	products := s.all(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrProductNotFound
	}
	return s.buckets.Save(ctx, store.BucketProducts, kept)
}

// SellerListings returns the products owned by one seller, newest first.
func (s *Service) SellerListings(ctx context.Context, sellerID string) []models.Product {
	var mine []models.Product
	for _, p := range s.all(ctx) {
		if p.SellerID == sellerID {
			mine = append(mine, p)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine
}
