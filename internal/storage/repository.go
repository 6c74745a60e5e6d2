package storage

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Table describes how an entity type maps onto its table. Columns excludes
// the id column; Values must produce arguments in the same order.
type Table[T any] struct {
	Name    string
	Columns []string
	Values  func(*T) []any
	ID      func(*T) int64
	SetID   func(*T, int64)
}

// Repository is the generic persistence gateway for one entity type. Within
// a unit of work every change is staged on the shared transaction and only
// becomes visible to other sessions after Complete.
type Repository[T any] struct {
	db       DB
	table    Table[T]
	affected *int64
}

func newRepository[T any](db DB, table Table[T], affected *int64) *Repository[T] {
	return &Repository[T]{db: db, table: table, affected: affected}
}

func (r *Repository[T]) selectAll(ctx context.Context, where string, args []any, orderBy string) ([]T, error) {
	rows, err := r.db.Query(ctx, "SELECT * FROM "+r.table.Name+where+orderBy, args...)
	if err != nil {
		return nil, wrapErr("select "+r.table.Name, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, wrapErr("scan "+r.table.Name, err)
	}
	return out, nil
}

// GetByID returns the live entity with the given id, or ErrNotFound.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	rows, err := r.db.Query(ctx, "SELECT * FROM "+r.table.Name+" WHERE id = $1 AND NOT is_deleted", id)
	if err != nil {
		return zero, wrapErr("get "+r.table.Name, err)
	}
	ent, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, wrapErr("get "+r.table.Name, err)
	}
	return ent, nil
}

// GetAll returns every non-deleted entity ordered by id.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.selectAll(ctx, " WHERE NOT is_deleted", nil, " ORDER BY id")
}

// Find returns the non-deleted entities matching every condition.
func (r *Repository[T]) Find(ctx context.Context, conds ...Cond) ([]T, error) {
	where, args := whereClause(conds, false)
	return r.selectAll(ctx, where, args, " ORDER BY id")
}

// Add inserts the entity and populates its id. The row is durable only once
// the owning unit of work completes.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	placeholders := make([]string, len(r.table.Columns))
	for i := range placeholders {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	sql := "INSERT INTO " + r.table.Name +
		" (" + strings.Join(r.table.Columns, ", ") + ") VALUES (" +
		strings.Join(placeholders, ", ") + ") RETURNING id"
	var id int64
	if err := r.db.QueryRow(ctx, sql, r.table.Values(entity)...).Scan(&id); err != nil {
		return wrapErr("insert "+r.table.Name, err)
	}
	r.table.SetID(entity, id)
	r.count(1)
	return nil
}

// Update writes every mapped column of an existing entity.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	assignments := make([]string, len(r.table.Columns))
	for i, col := range r.table.Columns {
		assignments[i] = col + " = $" + strconv.Itoa(i+1)
	}
	sql := "UPDATE " + r.table.Name + " SET " + strings.Join(assignments, ", ") +
		" WHERE id = $" + strconv.Itoa(len(r.table.Columns)+1)
	args := append(r.table.Values(entity), r.table.ID(entity))
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return wrapErr("update "+r.table.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.count(tag.RowsAffected())
	return nil
}

// Delete physically removes the row. Logical deletion is a service concern
// expressed through Update; this exists for rows whose hard removal is the
// correct semantics, such as cascading salary history.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM "+r.table.Name+" WHERE id = $1", r.table.ID(entity))
	if err != nil {
		return wrapErr("delete "+r.table.Name, err)
	}
	r.count(tag.RowsAffected())
	return nil
}

// Exists reports whether any non-deleted entity matches the conditions.
func (r *Repository[T]) Exists(ctx context.Context, conds ...Cond) (bool, error) {
	where, args := whereClause(conds, false)
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+r.table.Name+where+")", args...).Scan(&exists)
	if err != nil {
		return false, wrapErr("exists "+r.table.Name, err)
	}
	return exists, nil
}

// Count counts non-deleted entities matching the conditions.
func (r *Repository[T]) Count(ctx context.Context, conds ...Cond) (int64, error) {
	return r.countRows(ctx, conds, false)
}

// CountAll counts matching rows regardless of the soft-delete flag. The
// employee code sequence depends on this so codes are never reused after a
// logical delete.
func (r *Repository[T]) CountAll(ctx context.Context, conds ...Cond) (int64, error) {
	return r.countRows(ctx, conds, true)
}

func (r *Repository[T]) countRows(ctx context.Context, conds []Cond, includeDeleted bool) (int64, error) {
	where, args := whereClause(conds, includeDeleted)
	var n int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.table.Name+where, args...).Scan(&n)
	if err != nil {
		return 0, wrapErr("count "+r.table.Name, err)
	}
	return n, nil
}

func (r *Repository[T]) count(n int64) {
	if r.affected != nil {
		*r.affected += n
	}
}
