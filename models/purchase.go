package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an immutable order record. Products holds one snapshot per
// cart line at checkout time; Total already accounts for quantities.
type Purchase struct {
	ID       string          `json:"id"`
	Products []Product       `json:"products"`
	Total    decimal.Decimal `json:"total"`
	Date     time.Time       `json:"date"`
	UserID   string          `json:"user_id"`
}
