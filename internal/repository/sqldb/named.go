package sqldb

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// namedGet runs a named statement that returns at most one row and scans it
// into dest, reporting sql.ErrNoRows when nothing came back.
func namedGet(ctx context.Context, db sqlx.ExtContext, dest any, query string, arg any) error {
	rows, err := sqlx.NamedQueryContext(ctx, db, query, arg)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.StructScan(dest); err != nil {
		return err
	}
	return rows.Err()
}
