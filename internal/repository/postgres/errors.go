package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsPgNoRowsError checks whether an error is pgx's no-rows sentinel.
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
