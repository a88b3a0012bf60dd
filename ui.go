package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rithanya77-05/ecofinds/app"
	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/services/account"
	"github.com/Rithanya77-05/ecofinds/services/catalog"
)

// ui is the line-oriented front end: it renders the shell's active
// screen, reads one command and dispatches it. All state lives in the
// shell and the services; the ui only keeps the current feed filter.
type ui struct {
	shell  *app.App
	in     *bufio.Scanner
	out    io.Writer
	filter catalog.Filter
}

func runUI(ctx context.Context, shell *app.App, in io.Reader, out io.Writer) {
	u := &ui{shell: shell, in: bufio.NewScanner(in), out: out}
	fmt.Fprintln(out, "EcoFinds — sustainable secondhand marketplace")
	for {
		u.render(ctx)
		fmt.Fprintf(out, "[%s]> ", shell.Screen())
		if !u.in.Scan() {
			return
		}
		line := strings.TrimSpace(u.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		u.dispatch(ctx, line)
	}
}

func (u *ui) say(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *ui) render(ctx context.Context) {
	switch u.shell.Screen() {
	case app.ScreenLanding:
		u.say("\nWelcome! Commands: login | browse | quit")
	case app.ScreenAuth:
		u.say("\nSign in. Commands: login <email> <password> | signup <email> <username> <password> | back")
	case app.ScreenFeed:
		u.renderFeed(ctx)
	case app.ScreenProductDetail:
		u.renderDetail()
	case app.ScreenCart:
		u.renderCart(ctx)
	case app.ScreenPurchases:
		u.renderPurchases(ctx)
	case app.ScreenWishlist:
		u.renderWishlist(ctx)
	case app.ScreenMyListings:
		u.renderMyListings(ctx)
	case app.ScreenDashboard:
		u.renderDashboard(ctx)
	case app.ScreenAddProduct:
		u.say("\nList an item. Command: submit <title> | <description> | <category> | <price> | <image-url>")
		if editing := u.shell.EditingProduct(); editing != nil {
			u.say("editing %q (%s)", editing.Title, editing.ID)
		}
		u.say("categories: %v", models.Categories())
	}
}

func (u *ui) renderFeed(ctx context.Context) {
	products := u.shell.Catalog.List(ctx, u.filter)
	u.say("\nFeed — %d item(s) (search=%q category=%q sort=%s)",
		len(products), u.filter.Search, u.filter.Category, sortLabel(u.filter.Sort))
	for _, p := range products {
		u.say("  %-4s ₹%-9s %-30s [%s]", p.ID, p.Price.StringFixed(2), p.Title, p.Category)
	}
	u.say("Commands: search <term> | category <name|all> | sort <newest|price-low|price-high> | view <id> | wish <id> | sell | cart | wishlist | purchases | mine | dashboard | logout")
}

func (u *ui) renderDetail() {
	p := u.shell.SelectedProduct()
	if p == nil {
		u.say("\nNo product selected. Command: back")
		return
	}
	u.say("\n%s — ₹%s", p.Title, p.Price.StringFixed(2))
	u.say("%s", p.Description)
	u.say("category %s, listed %s, rating %.1f", p.Category, p.CreatedAt.Format("2006-01-02"), p.Rating)
	u.say("Commands: add | back")
}

func (u *ui) renderCart(ctx context.Context) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("\nPlease log in to view your cart. Command: back")
		return
	}
	items := u.shell.Carts.Items(ctx, user.ID)
	u.say("\nYour cart — %d line(s)", len(items))
	for _, item := range items {
		u.say("  %-4s %-30s ×%-3d ₹%s", item.Product.ID, item.Title, item.Quantity, item.LineTotal().StringFixed(2))
	}
	u.say("Total: ₹%s", u.shell.Carts.Total(ctx, user.ID).StringFixed(2))
	u.say("Commands: inc <id> | dec <id> | rm <id> | qty <id> <n> | checkout | back")
}

func (u *ui) renderPurchases(ctx context.Context) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("\nPlease log in to view purchases. Command: back")
		return
	}
	purchases := u.shell.Orders.History(ctx, user.ID)
	u.say("\nPrevious purchases — %d order(s)", len(purchases))
	for _, p := range purchases {
		u.say("  order %s on %s — %d item(s), ₹%s",
			p.ID, p.Date.Format("January 2, 2006"), len(p.Products), p.Total.StringFixed(2))
		for _, prod := range p.Products {
			u.say("    %-30s ₹%s", prod.Title, prod.Price.StringFixed(2))
		}
	}
	u.say("Commands: back")
}

func (u *ui) renderWishlist(ctx context.Context) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("\nPlease log in to view your wishlist. Command: back")
		return
	}
	saved := u.shell.Wishlist.List(ctx, user.ID)
	u.say("\nWishlist — %d item(s)", len(saved))
	for _, p := range saved {
		u.say("  %-4s ₹%-9s %s", p.ID, p.Price.StringFixed(2), p.Title)
	}
	u.say("Commands: add <id> (to cart) | rm <id> | view <id> | back")
}

func (u *ui) renderMyListings(ctx context.Context) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("\nPlease log in to manage listings. Command: back")
		return
	}
	stats := u.shell.Catalog.Stats(ctx, user.ID)
	u.say("\nMy listings — %d active, total value ₹%s, avg %d day(s) listed",
		stats.TotalListings, stats.TotalValue.StringFixed(2), stats.AvgDaysListed)
	u.say("impact: %.1f kg CO2 saved, %.1f kg waste diverted, %d item(s) given new life",
		stats.CO2SavedKG, stats.WasteDivertedKG, stats.ItemsGivenNewLife)
	for _, p := range u.shell.Catalog.SellerListings(ctx, user.ID) {
		u.say("  %-4s ₹%-9s %s", p.ID, p.Price.StringFixed(2), p.Title)
	}
	u.say("Commands: new | edit <id> | delete <id> | back")
}

func (u *ui) renderDashboard(ctx context.Context) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("\nPlease log in to view the dashboard. Command: back")
		return
	}
	u.say("\nDashboard — %s <%s>", user.Username, user.Email)
	u.say("Commands: username <name> | email <addr> | image <url> | back")
}

func (u *ui) dispatch(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	// Navigation shortcuts shared by every screen.
	switch cmd {
	case "back", "browse", "feed":
		u.shell.Navigate(app.ScreenFeed, nil)
		return
	case "cart":
		u.shell.Navigate(app.ScreenCart, nil)
		return
	case "wishlist":
		u.shell.Navigate(app.ScreenWishlist, nil)
		return
	case "purchases":
		u.shell.Navigate(app.ScreenPurchases, nil)
		return
	case "mine":
		u.shell.Navigate(app.ScreenMyListings, nil)
		return
	case "dashboard":
		u.shell.Navigate(app.ScreenDashboard, nil)
		return
	case "sell", "new":
		u.shell.Navigate(app.ScreenAddProduct, nil)
		return
	case "logout":
		if err := u.shell.LogOut(ctx); err != nil {
			u.say("error: %v", err)
		}
		return
	}

	switch u.shell.Screen() {
	case app.ScreenLanding:
		if cmd == "login" {
			u.shell.Navigate(app.ScreenAuth, nil)
		}
	case app.ScreenAuth:
		u.authCommand(ctx, cmd, rest)
	case app.ScreenFeed:
		u.feedCommand(ctx, cmd, rest)
	case app.ScreenProductDetail:
		u.detailCommand(ctx, cmd)
	case app.ScreenCart:
		u.cartCommand(ctx, cmd, rest)
	case app.ScreenWishlist:
		u.wishlistCommand(ctx, cmd, rest)
	case app.ScreenMyListings:
		u.myListingsCommand(ctx, cmd, rest)
	case app.ScreenAddProduct:
		u.addProductCommand(ctx, cmd, rest)
	case app.ScreenDashboard:
		u.dashboardCommand(ctx, cmd, rest)
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) authCommand(ctx context.Context, cmd, rest string) {
	fields := strings.Fields(rest)
	switch cmd {
	case "login":
		if len(fields) != 2 {
			u.say("usage: login <email> <password>")
			return
		}
		user, err := u.shell.LogIn(ctx, fields[0], fields[1])
		if err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Welcome back, %s!", user.Username)
	case "signup":
		if len(fields) != 3 {
			u.say("usage: signup <email> <username> <password>")
			return
		}
		user, err := u.shell.SignUp(ctx, fields[0], fields[1], fields[2])
		if err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Account created, welcome %s!", user.Username)
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) feedCommand(ctx context.Context, cmd, rest string) {
	switch cmd {
	case "search":
		u.filter.Search = rest
	case "category":
		if rest == "all" || rest == "" {
			u.filter.Category = ""
			return
		}
		c := models.Category(rest)
		if !c.Valid() {
			u.say("unknown category %q", rest)
			return
		}
		u.filter.Category = c
	case "sort":
		u.filter.Sort = catalog.Sort(rest)
	case "view":
		if p, ok := u.shell.Catalog.Get(ctx, rest); ok {
			u.shell.Navigate(app.ScreenProductDetail, &p)
		} else {
			u.say("no product %q", rest)
		}
	case "wish":
		user, ok := u.shell.Accounts.Current(ctx)
		if !ok {
			u.say("please log in to save items")
			return
		}
		added, err := u.shell.Wishlist.Toggle(ctx, user.ID, rest)
		if err != nil {
			u.say("error: %v", err)
			return
		}
		if added {
			u.say("Added to wishlist")
		} else {
			u.say("Removed from wishlist")
		}
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) detailCommand(ctx context.Context, cmd string) {
	if cmd != "add" {
		u.say("unknown command %q", cmd)
		return
	}
	p := u.shell.SelectedProduct()
	if p == nil {
		return
	}
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("Please log in to add items to cart")
		return
	}
	if p.SellerID == user.ID {
		u.say("This is your own listing — manage it under 'mine'")
		return
	}
	if err := u.shell.Carts.AddItem(ctx, user.ID, *p); err != nil {
		u.say("error: %v", err)
		return
	}
	u.say("Added to cart!")
}

func (u *ui) cartCommand(ctx context.Context, cmd, rest string) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		return
	}
	adjust := func(id string, delta int) {
		for _, item := range u.shell.Carts.Items(ctx, user.ID) {
			if item.Product.ID == id {
				if err := u.shell.Carts.SetQuantity(ctx, user.ID, id, item.Quantity+delta); err != nil {
					u.say("error: %v", err)
				}
				return
			}
		}
		u.say("no cart line %q", id)
	}
	switch cmd {
	case "inc":
		adjust(rest, 1)
	case "dec":
		adjust(rest, -1)
	case "rm":
		if err := u.shell.Carts.RemoveItem(ctx, user.ID, rest); err != nil {
			u.say("error: %v", err)
		} else {
			u.say("Item removed from cart")
		}
	case "qty":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			u.say("usage: qty <id> <n>")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			u.say("bad quantity %q", fields[1])
			return
		}
		if err := u.shell.Carts.SetQuantity(ctx, user.ID, fields[0], n); err != nil {
			u.say("error: %v", err)
		}
	case "checkout":
		purchase, err := u.shell.Checkout(ctx)
		if err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Purchase completed successfully! Order %s, total ₹%s",
			purchase.ID, purchase.Total.StringFixed(2))
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) wishlistCommand(ctx context.Context, cmd, rest string) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		return
	}
	switch cmd {
	case "add":
		p, ok := u.shell.Catalog.Get(ctx, rest)
		if !ok {
			u.say("no product %q", rest)
			return
		}
		if err := u.shell.Carts.AddItem(ctx, user.ID, p); err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Added to cart")
	case "rm":
		if _, err := u.shell.Wishlist.Toggle(ctx, user.ID, rest); err != nil {
			u.say("error: %v", err)
		} else {
			u.say("Removed from wishlist")
		}
	case "view":
		if p, ok := u.shell.Catalog.Get(ctx, rest); ok {
			u.shell.Navigate(app.ScreenProductDetail, &p)
		}
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) myListingsCommand(ctx context.Context, cmd, rest string) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		return
	}
	switch cmd {
	case "edit":
		p, found := u.shell.Catalog.Get(ctx, rest)
		if !found || p.SellerID != user.ID {
			u.say("no listing %q", rest)
			return
		}
		u.shell.Navigate(app.ScreenAddProduct, &p)
	case "delete":
		p, found := u.shell.Catalog.Get(ctx, rest)
		if !found || p.SellerID != user.ID {
			u.say("no listing %q", rest)
			return
		}
		if err := u.shell.Catalog.Delete(ctx, p.ID); err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Product deleted successfully")
	default:
		u.say("unknown command %q", cmd)
	}
}

func (u *ui) addProductCommand(ctx context.Context, cmd, rest string) {
	if cmd != "submit" {
		u.say("unknown command %q", cmd)
		return
	}
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		u.say("please log in to sell")
		return
	}
	parts := strings.Split(rest, "|")
	if len(parts) != 5 {
		u.say("usage: submit <title> | <description> | <category> | <price> | <image-url>")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	price, err := decimal.NewFromString(parts[3])
	if err != nil {
		u.say("bad price %q", parts[3])
		return
	}
	in := catalog.Input{
		Title:       parts[0],
		Description: parts[1],
		Category:    models.Category(parts[2]),
		Price:       price,
		Image:       parts[4],
		SellerID:    user.ID,
	}
	if editing := u.shell.EditingProduct(); editing != nil {
		if _, err := u.shell.Catalog.Update(ctx, editing.ID, in); err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Product updated successfully!")
	} else {
		if _, err := u.shell.Catalog.Create(ctx, in); err != nil {
			u.say("error: %v", err)
			return
		}
		u.say("Product added successfully!")
	}
	u.shell.Navigate(app.ScreenMyListings, nil)
}

func (u *ui) dashboardCommand(ctx context.Context, cmd, rest string) {
	user, ok := u.shell.Accounts.Current(ctx)
	if !ok {
		return
	}
	update := account.ProfileUpdate{
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
	switch cmd {
	case "username":
		update.Username = rest
	case "email":
		update.Email = rest
	case "image":
		update.ProfileImage = rest
	default:
		u.say("unknown command %q", cmd)
		return
	}
	if _, err := u.shell.Accounts.UpdateProfile(ctx, user.ID, update); err != nil {
		u.say("error: %v", err)
		return
	}
	u.say("Profile updated successfully!")
}

func sortLabel(s catalog.Sort) catalog.Sort {
	if s == "" {
		return catalog.SortNewest
	}
	return s
}
