package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
)

func TestCoordinatorRun_NilClient(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(nil, 0)
	err := c.Run(context.Background(), func(context.Context, *ent.Tx) error { return nil })
	if err == nil {
		t.Fatal("expected error for uninitialized coordinator")
	}
}

func TestCoordinatorRun_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "coord_commit")
	c := NewCoordinator(client, 5*time.Second)
	ctx := context.Background()

	err := c.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		return tx.Field.Create().
			SetID("f1").
			SetName("committed").
			SetTotalCapacity(10).
			SetFreeCapacity(10).
			Exec(ctx)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := client.Field.Get(ctx, "f1"); err != nil {
		t.Fatalf("committed row missing: %v", err)
	}
}

func TestCoordinatorRun_RollsBackOnError(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "coord_rollback")
	c := NewCoordinator(client, 5*time.Second)
	ctx := context.Background()

	boom := errors.New("boom")
	err := c.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		if err := tx.Field.Create().
			SetID("f1").
			SetName("rolled-back").
			SetTotalCapacity(10).
			SetFreeCapacity(10).
			Exec(ctx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want the unit-of-work error unchanged", err)
	}

	exists, qErr := client.Field.Query().Exist(ctx)
	if qErr != nil {
		t.Fatalf("query: %v", qErr)
	}
	if exists {
		t.Fatal("rolled-back row is visible")
	}
}

func TestCoordinatorRun_TimeoutSurfacesAsTransactionTimeout(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "coord_timeout")
	c := NewCoordinator(client, 50*time.Millisecond)

	err := c.Run(context.Background(), func(ctx context.Context, _ *ent.Tx) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !apperrors.HasCode(err, apperrors.CodeTransactionTimeout) {
		t.Fatalf("Run error = %v, want %s", err, apperrors.CodeTransactionTimeout)
	}
}
