// Package postgres implements the repository interfaces over database/sql
// with parameterized queries and no business logic.
package postgres

import (
	"database/sql"
	"errors"
)

// IsNoRowsError reports whether err is the driver's no-rows sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
