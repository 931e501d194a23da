// Package dbx holds the small database plumbing shared by every
// repository: DBTX, a query interface satisfied by *sql.DB and *sql.Tx
// alike, and WithTx for running a function inside a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql that repositories actually call,
// so the same repository code runs against a plain connection or a
// transaction handle.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx opens a transaction, passes the transactional handle to fn,
// and commits when fn returns nil. Any error or panic rolls the
// transaction back; panics are rethrown after the rollback.
//
// Typical use, reading and updating a row atomically:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    user, err := repos.Users(tx).GetByID(ctx, id)
//	    if err != nil {
//	        return err
//	    }
//	    return repos.Users(tx).UpdateActive(ctx, user.ID, active)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
