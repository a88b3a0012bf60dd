package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Bucket names used by the services. Each bucket holds one JSON-encoded
// collection (or a single object, for the session).
const (
	BucketSession   = "ecofinds_user"
	BucketUsers     = "ecofinds_users"
	BucketProducts  = "ecofinds_products"
	BucketCart      = "ecofinds_cart"
	BucketPurchases = "ecofinds_purchases"
	BucketWishlist  = "ecofinds_wishlist"
)

// KV is the raw key-value contract shared by all storage backends.
// Get returns (nil, nil) when the key is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Buckets wraps a KV with the JSON codec every service reads and writes
// through. Reads are defensive: an absent bucket, a backend read error or
// malformed JSON all decode to the zero collection instead of failing,
// so one corrupt bucket never takes down every screen that touches it.
type Buckets struct {
	kv  KV
	log *slog.Logger
}

func NewBuckets(kv KV, log *slog.Logger) *Buckets {
	if log == nil {
		log = slog.Default()
	}
	return &Buckets{kv: kv, log: log}
}

// Load decodes the named bucket into v. v is left untouched when the
// bucket is absent; it is the caller's zero value in that case.
func (b *Buckets) Load(ctx context.Context, bucket string, v any) {
	raw, err := b.kv.Get(ctx, bucket)
	if err != nil {
		b.log.Warn("bucket read failed, treating as empty", "bucket", bucket, "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		b.log.Warn("bucket holds malformed JSON, treating as empty", "bucket", bucket, "error", err)
	}
}

// Exists reports whether the named bucket has ever been written.
func (b *Buckets) Exists(ctx context.Context, bucket string) bool {
	raw, err := b.kv.Get(ctx, bucket)
	return err == nil && len(raw) > 0
}

// Save encodes v and overwrites the named bucket with it.
func (b *Buckets) Save(ctx context.Context, bucket string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode bucket %s: %w", bucket, err)
	}
	if err := b.kv.Set(ctx, bucket, raw); err != nil {
		return fmt.Errorf("write bucket %s: %w", bucket, err)
	}
	return nil
}

// Clear removes the named bucket entirely.
func (b *Buckets) Clear(ctx context.Context, bucket string) error {
	if err := b.kv.Delete(ctx, bucket); err != nil {
		return fmt.Errorf("clear bucket %s: %w", bucket, err)
	}
	return nil
}
