package db

import "database/sql"

// DB wraps the shared *sql.DB handle so store constructors take one
// explicit dependency instead of a package-level global.
type DB struct {
	*sql.DB
}
