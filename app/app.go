package app

import (
	"context"
	"log/slog"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/services/account"
	"github.com/Rithanya77-05/ecofinds/services/cart"
	"github.com/Rithanya77-05/ecofinds/services/catalog"
	"github.com/Rithanya77-05/ecofinds/services/order"
	"github.com/Rithanya77-05/ecofinds/services/wishlist"
)

// Screen names one view of the shell.
type Screen string

const (
	ScreenLanding       Screen = "landing"
	ScreenAuth          Screen = "auth"
	ScreenDashboard     Screen = "dashboard"
	ScreenFeed          Screen = "feed"
	ScreenAddProduct    Screen = "add-product"
	ScreenMyListings    Screen = "my-listings"
	ScreenProductDetail Screen = "product-detail"
	ScreenCart          Screen = "cart"
	ScreenPurchases     Screen = "purchases"
	ScreenWishlist      Screen = "wishlist"
)

// App is the navigation shell: one active screen, a selected-product
// slot for the detail view and an editing-product slot for the listing
// form. It dispatches user intents to the services and never holds state
// anywhere else.
type App struct {
	Accounts *account.Service
	Catalog  *catalog.Service
	Carts    *cart.Service
	Orders   *order.Service
	Wishlist *wishlist.Service

	log      *slog.Logger
	screen   Screen
	selected *models.Product
	editing  *models.Product
}

// New builds the shell. The initial screen is the feed when a session is
// already active, the landing page otherwise.
func New(ctx context.Context, accounts *account.Service, cat *catalog.Service, carts *cart.Service, orders *order.Service, wl *wishlist.Service, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		Accounts: accounts,
		Catalog:  cat,
		Carts:    carts,
		Orders:   orders,
		Wishlist: wl,
		log:      log,
		screen:   ScreenLanding,
	}
	if _, ok := accounts.Current(ctx); ok {
		a.screen = ScreenFeed
	}
	return a
}

// Navigate moves to the target screen. With a product, product-detail
// sets the selected slot and add-product sets the editing slot; without
// one, both slots clear.
func (a *App) Navigate(screen Screen, product *models.Product) {
	a.screen = screen
	if product != nil {
		switch screen {
		case ScreenProductDetail:
			a.selected = product
		case ScreenAddProduct:
			a.editing = product
		}
		return
	}
	a.selected = nil
	a.editing = nil
}

// Screen returns the active screen.
func (a *App) Screen() Screen { return a.screen }

// SelectedProduct returns the product shown on the detail view, if any.
func (a *App) SelectedProduct() *models.Product { return a.selected }

// EditingProduct returns the product loaded into the listing form, if
// any; nil means the form creates a new listing.
func (a *App) EditingProduct() *models.Product { return a.editing }

// LogIn authenticates and lands on the feed.
func (a *App) LogIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := a.Accounts.LogIn(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	a.Navigate(ScreenFeed, nil)
	return user, nil
}

// SignUp registers, signs in and lands on the feed.
func (a *App) SignUp(ctx context.Context, email, username, password string) (models.User, error) {
	user, err := a.Accounts.SignUp(ctx, email, username, password)
	if err != nil {
		return models.User{}, err
	}
	a.Navigate(ScreenFeed, nil)
	return user, nil
}

// LogOut clears the session and returns to the auth screen.
func (a *App) LogOut(ctx context.Context) error {
	if err := a.Accounts.LogOut(ctx); err != nil {
		return err
	}
	a.Navigate(ScreenAuth, nil)
	return nil
}

// Checkout completes the purchase and lands on the purchase history on
// success. An empty cart stays on the cart screen.
func (a *App) Checkout(ctx context.Context) (models.Purchase, error) {
	user, ok := a.Accounts.Current(ctx)
	if !ok {
		return models.Purchase{}, order.ErrEmptyCart
	}
	purchase, err := a.Orders.Checkout(ctx, user.ID)
	if err != nil {
		return models.Purchase{}, err
	}
	a.Navigate(ScreenPurchases, nil)
	return purchase, nil
}
