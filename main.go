package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rithanya77-05/ecofinds/app"
	"github.com/Rithanya77-05/ecofinds/services/account"
	"github.com/Rithanya77-05/ecofinds/services/cart"
	"github.com/Rithanya77-05/ecofinds/services/catalog"
	"github.com/Rithanya77-05/ecofinds/services/order"
	"github.com/Rithanya77-05/ecofinds/services/wishlist"
	"github.com/Rithanya77-05/ecofinds/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := newLogger()

	kv, err := openStore(log)
	if err != nil {
		log.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	ctx := context.Background()
	buckets := store.NewBuckets(kv, log)

	accounts := account.New(buckets, log)
	catalogSvc := catalog.New(buckets, log)
	carts := cart.New(buckets, log)
	orders := order.New(buckets, carts, log)
	wishlists := wishlist.New(buckets, log)

	// First run gets the fixed demo catalog.
	if err := catalogSvc.Seed(ctx); err != nil {
		log.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	shell := app.New(ctx, accounts, catalogSvc, carts, orders, wishlists, log)
	runUI(ctx, shell, os.Stdin, os.Stdout)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("ECOFINDS_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore picks the storage backend. ECOFINDS_STORE selects "memory"
// or "redis"; anything else (including unset) means the sqlite file at
// ECOFINDS_DB, default ecofinds.db next to the binary.
func openStore(log *slog.Logger) (store.KV, error) {
	switch os.Getenv("ECOFINDS_STORE") {
	case "memory":
		log.Info("using in-memory store, nothing will be persisted")
		return store.NewMemory(), nil
	case "redis":
		addr := os.Getenv("ECOFINDS_REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		log.Info("using redis store", "addr", addr)
		return store.NewRedis(addr)
	default:
		path := os.Getenv("ECOFINDS_DB")
		if path == "" {
			path = "ecofinds.db"
		}
		log.Info("using sqlite store", "path", path)
		return store.NewSQLite(path)
	}
}
