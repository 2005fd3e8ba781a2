package repositories

import (
	intconfig "travelbook/internal/config"

	"github.com/jmoiron/sqlx"
)

// executor returns override when set, else the shared connection. A nil
// result means no database is configured.
func executor(override sqlx.ExtContext) sqlx.ExtContext {
	if override != nil {
		return override
	}
	if intconfig.DB != nil {
		return intconfig.DB
	}
	return nil
}

type noDBError struct{}

func (noDBError) Error() string { return "db tidak tersedia" }

var errNoDB error = noDBError{}
