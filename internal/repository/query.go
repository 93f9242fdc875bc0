package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-admin-api/pkg/database"
)

// selectAll runs a read-only listing on a scoped connection. The returned
// slice is never nil.
func selectAll[T any](ctx context.Context, store *database.Store, label, query string, args ...interface{}) ([]T, error) {
	items := make([]T, 0)
	err := store.WithConn(ctx, label, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &items, query, args...)
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

// execAffected runs a write statement and reports the affected row count.
func execAffected(ctx context.Context, store *database.Store, label, query string, args ...interface{}) (int64, error) {
	var affected int64
	err := store.WithConn(ctx, label, func(ctx context.Context, conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}
