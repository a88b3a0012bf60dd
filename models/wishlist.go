package models

// WishlistEntry marks one product saved by one user. Wishlists are
// scoped per user, the same way carts and purchases are.
type WishlistEntry struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}
