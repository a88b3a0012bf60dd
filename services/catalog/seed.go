package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

//go:embed seed_catalog.yaml
var seedYAML []byte

type seedProduct struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Price       string  `yaml:"price"`
	Image       string  `yaml:"image"`
	SellerID    string  `yaml:"seller_id"`
	Rating      float64 `yaml:"rating"`
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

// Seed writes the fixed demo catalog on first run. It is a no-op when
// the products bucket has ever been written, even if every listing has
// since been deleted.
func (s *Service) Seed(ctx context.Context) error {
	if s.buckets.Exists(ctx, store.BucketProducts) {
		return nil
	}

	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return fmt.Errorf("decode seed catalog: %w", err)
	}

	// Timestamps are staggered a minute apart so newest-first ordering
	// of the fresh catalog is deterministic, first entry on top.
	now := time.Now()
	products := make([]models.Product, 0, len(file.Products))
	for i, sp := range file.Products {
		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			return fmt.Errorf("seed product %s has bad price %q: %w", sp.ID, sp.Price, err)
		}
		products = append(products, models.Product{
			ID:          sp.ID,
			Title:       sp.Title,
			Description: sp.Description,
			Category:    models.Category(sp.Category),
			Price:       price,
			Image:       sp.Image,
			SellerID:    sp.SellerID,
			CreatedAt:   now.Add(-time.Duration(i) * time.Minute),
			Rating:      sp.Rating,
		})
	}

	if err := s.buckets.Save(ctx, store.BucketProducts, products); err != nil {
		return err
	}
	s.log.Info("seeded demo catalog", "products", len(products))
	return nil
}
