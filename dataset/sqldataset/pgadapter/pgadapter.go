/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/viggieG/ID3-Random-Forest/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

// Dialect is the PostgreSQL sqldataset.Dialect.
type Dialect struct{}

// Placeholder returns $n.
func (Dialect) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// IDColumnType returns a SERIAL primary key.
func (Dialect) IDColumnType() string {
	return "SERIAL PRIMARY KEY"
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	return sqldataset.NewAdapter(db, Dialect{}), nil
}
