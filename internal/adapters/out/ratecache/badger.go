// Package ratecache keeps the latest usable shopping result of each order in
// badger, with a TTL ending at the result's expiry.
package ratecache

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/adapters/out/postgres/ratingrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/dgraph-io/badger/v4"
)

var _ ports.RateCache = (*BadgerCache)(nil)

type BadgerCache struct {
	db     *badger.DB
	clock  kernel.Clock
	logger *slog.Logger
}

// Open opens a cache at path, or a purely in-memory one when path is empty.
func Open(path string, clock kernel.Clock, logger *slog.Logger) (*BadgerCache, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerCache{db: db, clock: clock, logger: logger.With("component", "rate-cache")}, nil
}

func (c *BadgerCache) Close() error {
	return c.db.Close()
}

// Put stores result until it expires. A result that is already stale is not
// stored.
func (c *BadgerCache) Put(ctx context.Context, result *rating.ShoppingResult) error {
	ttl := result.ExpiresAt().Sub(c.clock.Now())
	if ttl <= 0 {
		c.logger.DebugContext(ctx, "skipping stale rate", "orderId", result.OrderID().String())
		return nil
	}

	data, err := ratingrepo.Encode(result)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key(result.OrderID()), data).WithTTL(ttl))
	})
}

func (c *BadgerCache) Get(_ context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(orderID))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	if err != nil {
		return nil, err
	}
	return ratingrepo.Decode(data)
}

func key(orderID kernel.UUID) []byte {
	return []byte("rate:" + orderID.String())
}
