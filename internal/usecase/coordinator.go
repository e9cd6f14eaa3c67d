// Package usecase provides application use cases.
//
// Every capacity-affecting operation runs through the allocation
// Coordinator: one ent transaction spanning the field row and the
// project/reservation rows it touches, committed or rolled back as a
// whole. The unit of work is an explicit argument, never a shared
// process-wide handle.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
)

// UnitOfWork is the body of one atomic allocation operation. All reads
// and writes must go through tx; returning an error rolls everything back
// and propagates that error to the caller unchanged.
type UnitOfWork func(ctx context.Context, tx *ent.Tx) error

// Coordinator wraps capacity-affecting operations in atomic, isolated
// units of work. Concurrent writers on the same field serialize on the
// field row lock taken by the ledger; writers on different fields never
// block each other.
type Coordinator struct {
	client  *ent.Client
	timeout time.Duration
}

// NewCoordinator creates a Coordinator. A non-positive timeout disables
// the per-operation deadline.
func NewCoordinator(client *ent.Client, timeout time.Duration) *Coordinator {
	return &Coordinator{client: client, timeout: timeout}
}

// Run executes fn inside one transaction. Either every write inside fn
// commits, or none does. Deadline expiry (lock contention, store outage)
// surfaces as TransactionTimeout; any other error from fn is returned
// as-is.
func (c *Coordinator) Run(ctx context.Context, fn UnitOfWork) error {
	if c.client == nil {
		return fmt.Errorf("allocation coordinator is not initialized")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return mapStoreErr(err, "begin allocation tx")
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, tx); err != nil {
		if isTimeout(err) {
			return apperrors.TransactionTimeout(err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapStoreErr(err, "commit allocation tx")
	}
	return nil
}

func mapStoreErr(err error, op string) error {
	if isTimeout(err) {
		return apperrors.TransactionTimeout(err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
