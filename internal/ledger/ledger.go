// Package ledger implements capacity bookkeeping on the field row.
//
// Every function here runs inside an already-open transaction owned by
// the allocation coordinator and touches only the fields table. Used
// capacity is derived from the row itself (total - free), which holds at
// rest by the ledger invariant, so the ledger never reads project or
// reservation rows and stays testable in isolation.
package ledger

import (
	"context"

	"entgo.io/ent/dialect/sql"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
)

// epsilon absorbs float drift on boundary comparisons so that consuming
// exactly the remaining free capacity succeeds.
const epsilon = 1e-9

// AdjustFreeCapacity applies a signed delta to a field's free capacity.
//
// The field row is locked FOR UPDATE first, which serializes every
// capacity writer on the same field for the rest of the transaction; the
// conditional UPDATE below re-states the invariant in SQL as a second
// line of defense. Returns CapacityExceeded when the result would be
// negative and CapacityOverflow when it would exceed total capacity.
func AdjustFreeCapacity(ctx context.Context, tx *ent.Tx, fieldID string, delta float64) error {
	if delta == 0 {
		return nil
	}

	f, err := tx.Field.Query().
		Where(entfield.ID(fieldID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.FieldNotFound(fieldID)
		}
		return err
	}

	newFree := f.FreeCapacity + delta
	if newFree < -epsilon {
		return apperrors.CapacityExceeded(fieldID, -delta, f.FreeCapacity)
	}
	if newFree > f.TotalCapacity+epsilon {
		return apperrors.CapacityOverflow(fieldID)
	}

	n, err := tx.Field.Update().
		Where(entfield.ID(fieldID), freeCapacityWithinBounds(delta)).
		AddFreeCapacity(delta).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		// The locked read above passed, so only a bookkeeping bug gets here.
		return apperrors.CapacityOverflow(fieldID)
	}
	return nil
}

// SetTotalCapacity changes a field's total capacity and recomputes free
// capacity as newTotal - used, where used is derived from the locked row
// (total - free). Fails with InsufficientCapacity when newTotal no longer
// covers current usage.
func SetTotalCapacity(ctx context.Context, tx *ent.Tx, fieldID string, newTotal float64) error {
	if newTotal < 0 {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "total capacity must not be negative")
	}

	f, err := tx.Field.Query().
		Where(entfield.ID(fieldID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.FieldNotFound(fieldID)
		}
		return err
	}

	used := f.TotalCapacity - f.FreeCapacity
	if newTotal < used-epsilon {
		return apperrors.InsufficientCapacity(fieldID, newTotal, used)
	}

	return tx.Field.UpdateOneID(fieldID).
		SetTotalCapacity(newTotal).
		SetFreeCapacity(newTotal - used).
		Exec(ctx)
}

// freeCapacityWithinBounds restates the ledger invariant as a SQL guard:
// the update only matches while free + delta stays within [0, total].
func freeCapacityWithinBounds(delta float64) predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.WriteString(s.C(entfield.FieldFreeCapacity)).WriteString(" + ").Arg(delta).WriteString(" >= 0")
		}))
		s.Where(sql.P(func(b *sql.Builder) {
			b.WriteString(s.C(entfield.FieldFreeCapacity)).WriteString(" + ").Arg(delta).
				WriteString(" <= ").WriteString(s.C(entfield.FieldTotalCapacity))
		}))
	})
}
