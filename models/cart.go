package models

import "github.com/shopspring/decimal"

// CartItem is one line in a user's cart. The product fields are a
// snapshot taken when the item was added, so later edits to the listing
// do not change what is in the cart.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	UserID   string `json:"user_id"`
}

// LineTotal returns price multiplied by quantity.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
