package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes checked by the snapshot store
const (
	codeUndefinedTable = "42P01"
)

// IsUndefinedTable reports whether err is PostgreSQL complaining about a
// missing relation, which for the snapshot tables means migrations never ran.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}
