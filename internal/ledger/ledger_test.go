package ledger

import (
	"context"
	"testing"

	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
)

func TestAdjustFreeCapacity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_adjust")
	ctx := context.Background()

	_, err := client.Field.Create().
		SetID("field-1").
		SetName("north-plot").
		SetTotalCapacity(150).
		SetFreeCapacity(150).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed field: %v", err)
	}

	adjust := func(t *testing.T, fieldID string, delta float64) error {
		t.Helper()
		tx, err := client.Tx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		if err := AdjustFreeCapacity(ctx, tx, fieldID, delta); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("commit: %v", err)
		}
		return nil
	}

	freeCapacity := func(t *testing.T) float64 {
		t.Helper()
		f, err := client.Field.Query().Where(entfield.ID("field-1")).Only(ctx)
		if err != nil {
			t.Fatalf("read field: %v", err)
		}
		return f.FreeCapacity
	}

	t.Run("consume", func(t *testing.T) {
		if err := adjust(t, "field-1", -50); err != nil {
			t.Fatalf("consume 50: %v", err)
		}
		if got := freeCapacity(t); got != 100 {
			t.Fatalf("free capacity = %v, want 100", got)
		}
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		if err := adjust(t, "field-1", 0); err != nil {
			t.Fatalf("zero delta: %v", err)
		}
		if got := freeCapacity(t); got != 100 {
			t.Fatalf("free capacity = %v, want 100", got)
		}
	})

	t.Run("consume exactly the remainder", func(t *testing.T) {
		if err := adjust(t, "field-1", -100); err != nil {
			t.Fatalf("consume remainder: %v", err)
		}
		if got := freeCapacity(t); got != 0 {
			t.Fatalf("free capacity = %v, want 0", got)
		}
	})

	t.Run("overdraw fails and changes nothing", func(t *testing.T) {
		err := adjust(t, "field-1", -1)
		if !apperrors.HasCode(err, apperrors.CodeCapacityExceeded) {
			t.Fatalf("overdraw error = %v, want %s", err, apperrors.CodeCapacityExceeded)
		}
		if got := freeCapacity(t); got != 0 {
			t.Fatalf("free capacity = %v, want 0", got)
		}
	})

	t.Run("release", func(t *testing.T) {
		if err := adjust(t, "field-1", +150); err != nil {
			t.Fatalf("release: %v", err)
		}
		if got := freeCapacity(t); got != 150 {
			t.Fatalf("free capacity = %v, want 150", got)
		}
	})

	t.Run("over-release fails", func(t *testing.T) {
		err := adjust(t, "field-1", +1)
		if !apperrors.HasCode(err, apperrors.CodeCapacityOverflow) {
			t.Fatalf("over-release error = %v, want %s", err, apperrors.CodeCapacityOverflow)
		}
		if got := freeCapacity(t); got != 150 {
			t.Fatalf("free capacity = %v, want 150", got)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		err := adjust(t, "field-missing", -10)
		if !apperrors.HasCode(err, apperrors.CodeFieldNotFound) {
			t.Fatalf("unknown field error = %v, want %s", err, apperrors.CodeFieldNotFound)
		}
	})
}

func TestSetTotalCapacity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_total")
	ctx := context.Background()

	_, err := client.Field.Create().
		SetID("field-1").
		SetName("south-plot").
		SetTotalCapacity(200).
		SetFreeCapacity(80).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed field: %v", err)
	}

	setTotal := func(t *testing.T, newTotal float64) error {
		t.Helper()
		tx, err := client.Tx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		if err := SetTotalCapacity(ctx, tx, "field-1", newTotal); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("commit: %v", err)
		}
		return nil
	}

	// 200 total with 80 free means 120 is in use.

	t.Run("grow keeps usage and raises free", func(t *testing.T) {
		if err := setTotal(t, 300); err != nil {
			t.Fatalf("grow: %v", err)
		}
		f, err := client.Field.Query().Where(entfield.ID("field-1")).Only(ctx)
		if err != nil {
			t.Fatalf("read field: %v", err)
		}
		if f.TotalCapacity != 300 || f.FreeCapacity != 180 {
			t.Fatalf("total/free = %v/%v, want 300/180", f.TotalCapacity, f.FreeCapacity)
		}
	})

	t.Run("shrink to exactly the used surface", func(t *testing.T) {
		if err := setTotal(t, 120); err != nil {
			t.Fatalf("shrink to used: %v", err)
		}
		f, err := client.Field.Query().Where(entfield.ID("field-1")).Only(ctx)
		if err != nil {
			t.Fatalf("read field: %v", err)
		}
		if f.TotalCapacity != 120 || f.FreeCapacity != 0 {
			t.Fatalf("total/free = %v/%v, want 120/0", f.TotalCapacity, f.FreeCapacity)
		}
	})

	t.Run("shrink below usage fails", func(t *testing.T) {
		err := setTotal(t, 119)
		if !apperrors.HasCode(err, apperrors.CodeInsufficientCapacity) {
			t.Fatalf("shrink error = %v, want %s", err, apperrors.CodeInsufficientCapacity)
		}
	})

	t.Run("negative total fails", func(t *testing.T) {
		err := setTotal(t, -1)
		if !apperrors.HasCode(err, apperrors.CodeValidationFailed) {
			t.Fatalf("negative error = %v, want %s", err, apperrors.CodeValidationFailed)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		defer func() { _ = tx.Rollback() }()
		err = SetTotalCapacity(ctx, tx, "field-missing", 100)
		if !apperrors.HasCode(err, apperrors.CodeFieldNotFound) {
			t.Fatalf("unknown field error = %v, want %s", err, apperrors.CodeFieldNotFound)
		}
	})
}
