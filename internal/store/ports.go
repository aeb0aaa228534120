// Package store defines the ports the HTTP layer uses to persist and load
// expense records, decoupled from the backing medium.
package store

import (
	"context"
	"errors"

	"pennywise/internal/core"
)

// ErrNoData is returned by Load when nothing has ever been recorded. Callers
// treat it as the empty state, distinct from an I/O failure.
var ErrNoData = errors.New("no expenses recorded yet")

type (
	// Appender persists one expense record.
	Appender interface {
		Append(ctx context.Context, r core.Record) error
	}

	// Loader returns every stored record in insertion order.
	Loader interface {
		Load(ctx context.Context) ([]core.Record, error)
	}

	// Store combines both sides; every backend implements it.
	Store interface {
		Appender
		Loader
	}
)
