package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openmf/fieldops/internal/data/database"
	"github.com/openmf/fieldops/internal/domain/model"
	apperrors "github.com/openmf/fieldops/internal/errors"
)

// entityTable describes how one entity type maps onto its table. Every
// table shares the columns id, name, office_id, parent_id, payload and
// synced_at; payload holds the JSON encoding of the entity.
type entityTable[T model.Entity] struct {
	name   string
	office func(T) int64
	// parent returns the owning entity (group of a client, center of a
	// group). Nil means the table has no parent.
	parent func(T) int64
	// restore copies columns that the JSON encoding omits back onto a
	// decoded entity.
	restore func(e *T, parentID int64)
}

// entityRepo implements core.EntityStore over database/sql. Statements
// use $N placeholders, accepted by both pgx and sqlite3.
type entityRepo[T model.Entity] struct {
	db           *sql.DB
	table        entityTable[T]
	ident        string
	timeProvider TimeProvider
}

func newEntityRepo[T model.Entity](db *sql.DB, table entityTable[T], tp TimeProvider) *entityRepo[T] {
	if tp == nil {
		tp = RealTimeProvider{}
	}
	return &entityRepo[T]{
		db:           db,
		table:        table,
		ident:        pgx.Identifier{table.name}.Sanitize(),
		timeProvider: tp,
	}
}

// ListAll returns every stored entity ordered by ID.
func (r *entityRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.query(ctx, "SELECT payload, parent_id FROM "+r.ident+" ORDER BY id")
}

// listByParent returns the stored children of parentID ordered by ID.
func (r *entityRepo[T]) listByParent(ctx context.Context, parentID int64) ([]T, error) {
	return r.query(ctx, "SELECT payload, parent_id FROM "+r.ident+" WHERE parent_id = $1 ORDER BY id", parentID)
}

func (r *entityRepo[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var (
			payload  []byte
			parentID int64
		)
		if err := rows.Scan(&payload, &parentID); err != nil {
			return nil, apperrors.MapDBError(err)
		}
		var e T
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("decode stored %s: %w", r.table.name, err)
		}
		if r.table.restore != nil {
			r.table.restore(&e, parentID)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Save upserts one entity.
func (r *entityRepo[T]) Save(ctx context.Context, entity T) error {
	return r.SaveAll(ctx, []T{entity})
}

// SaveAll upserts entities in one transaction. Either all are stored or none.
func (r *entityRepo[T]) SaveAll(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	upsert := "INSERT INTO " + r.ident + ` (id, name, office_id, parent_id, payload, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			office_id = excluded.office_id,
			parent_id = excluded.parent_id,
			payload = excluded.payload,
			synced_at = excluded.synced_at`
	syncedAt := r.timeProvider.Now().UTC()

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsert)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entities {
			payload, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encode %s %d: %w", r.table.name, e.EntityID(), err)
			}
			var office, parent int64
			if r.table.office != nil {
				office = r.table.office(e)
			}
			if r.table.parent != nil {
				parent = r.table.parent(e)
			}
			if _, err := stmt.ExecContext(ctx, e.EntityID(), e.DisplayName(), office, parent, string(payload), syncedAt); err != nil {
				return err
			}
		}
		return nil
	})
	return apperrors.MapDBError(err)
}

// Delete removes an entity and reports whether it existed.
func (r *entityRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, errors.New("id must be positive")
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+r.ident+" WHERE id = $1", id)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return n > 0, nil
}
