// Package storage implements the persistence gateway: a generic repository
// per entity type and a unit of work that groups repositories over one
// transaction. All reads filter soft-deleted rows unless stated otherwise.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports a lookup that matched no live row.
var ErrNotFound = errors.New("record not found")

// DB is the querying surface shared by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StorageError wraps any failure coming out of the relational store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return &StorageError{Op: op, Err: err}
}

// UniqueConstraint returns the name of the violated unique constraint when
// err is a store-level unique violation, or the empty string otherwise.
// Services map the name back to the domain error behind the constraint; the
// store is the backstop for the service-level duplicate checks.
func UniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// Store owns the connection pool and opens units of work.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// Begin opens a unit of work backed by a fresh transaction. The caller must
// finish it with Complete or Rollback.
func (s *Store) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin", err)
	}
	return &UnitOfWork{tx: tx}, nil
}
