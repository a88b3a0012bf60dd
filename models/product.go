package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single secondhand listing.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	SellerID    string          `json:"seller_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Rating      float64         `json:"rating,omitempty"`
}
