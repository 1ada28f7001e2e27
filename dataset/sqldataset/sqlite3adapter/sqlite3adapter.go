/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	"github.com/viggieG/ID3-Random-Forest/dataset/sqldataset"

	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Dialect is the SQLite3 sqldataset.Dialect.
type Dialect struct{}

// Placeholder returns ?.
func (Dialect) Placeholder(int) string {
	return "?"
}

// IDColumnType returns an autoincremented integer primary key.
func (Dialect) IDColumnType() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

/*
New takes the path to a SQLite3 database file and returns
an Adapter that works on the database or an error if it
cannot be opened. The file is created if it does not exist.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return sqldataset.NewAdapter(db, Dialect{}), nil
}
