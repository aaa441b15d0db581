package domain

import (
	"context"
	"errors"
)

// ErrMalformedRecord marks a raw supplier record missing a field the adapter
// treats as required (the hotel id).
var ErrMalformedRecord = errors.New("malformed supplier record")

// Supplier translates one supplier's raw records into canonical Hotels.
type Supplier interface {
	Name() string
	Endpoint() string
	Parse(raw map[string]any) (Hotel, error)
}

// Fetcher retrieves the raw record list behind a supplier endpoint.
// A transport failure is fatal for the whole run; retry policy lives inside
// the implementation, never in the adapters.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
