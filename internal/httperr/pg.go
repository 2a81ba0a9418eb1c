package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505). The pre-insert existence checks are racy, so
// the constraint is the real guard and this maps it to a conflict response.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
