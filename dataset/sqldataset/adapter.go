package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// MaxRowInsertionsPerStatement is the maximum number
// of rows that are allowed to be added with a single
// insert command with the AddRows method of the adapter.
// Trying to add more will result in making more insertion commands
const MaxRowInsertionsPerStatement = 10

// IDColumn is the name of the column keeping the order of
// the examples. It cannot be used as a feature name.
const IDColumn = "id"

/*
Adapter is the interface to a SQL database used to read
and write datasets.
*/
type Adapter interface {
	// ColumnName takes the name of a feature and returns the
	// column it is stored in, or an error if the feature name
	// cannot be used as a column.
	ColumnName(featureName string) (string, error)
	// CreateTable ensures the table exists with a nullable
	// TEXT column for every given column and the IDColumn.
	CreateTable(ctx context.Context, table string, columns []string) error
	// ListColumns returns the columns of the table but the
	// IDColumn, in table order.
	ListColumns(ctx context.Context, table string) ([]string, error)
	// AddRows inserts the given rows with values for the given
	// columns and returns the number of rows inserted.
	AddRows(ctx context.Context, table string, columns []string, rows [][]sql.NullString) (int, error)
	// ListRows returns the values for the given columns of every
	// row in the table in insertion order.
	ListRows(ctx context.Context, table string, columns []string) ([][]sql.NullString, error)
	// Close closes the connection to the database.
	Close() error
}

/*
Dialect holds what differs between the SQL of the supported
backends.
*/
type Dialect interface {
	// Placeholder returns the bind parameter for the nth argument
	// of a statement, starting at 1.
	Placeholder(n int) string
	// IDColumnType returns the definition of an auto incremented
	// integer primary key.
	IDColumnType() string
}

type adapter struct {
	db      *sql.DB
	dialect Dialect
}

/*
NewAdapter takes a database handle and the dialect of its backend and
returns an Adapter that works on the database.
*/
func NewAdapter(db *sql.DB, dialect Dialect) Adapter {
	return &adapter{db, dialect}
}

func (a *adapter) ColumnName(featureName string) (string, error) {
	if featureName == IDColumn {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, featureName)
	}
	if _, err := quote(featureName); err != nil {
		return "", err
	}
	return featureName, nil
}

func (a *adapter) CreateTable(ctx context.Context, table string, columns []string) error {
	qt, err := quote(table)
	if err != nil {
		return err
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", qt))
	for _, c := range columns {
		qc, err := quote(c)
		if err != nil {
			return err
		}
		createStmtBuf.WriteString(fmt.Sprintf("%s TEXT NULL, ", qc))
	}
	createStmtBuf.WriteString(fmt.Sprintf(`"%s" %s)`, IDColumn, a.dialect.IDColumnType()))
	_, err = a.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %w", table, err)
	}
	return nil
}

func (a *adapter) ListColumns(ctx context.Context, table string) ([]string, error) {
	qt, err := quote(table)
	if err != nil {
		return nil, err
	}
	rows, err := a.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1 = 0", qt))
	if err != nil {
		return nil, fmt.Errorf("querying columns of %s: %w", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns of %s: %w", table, err)
	}
	result := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != IDColumn {
			result = append(result, c)
		}
	}
	return result, nil
}

func (a *adapter) AddRows(ctx context.Context, table string, columns []string, rows [][]sql.NullString) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("no columns to store")
	}
	qt, err := quote(table)
	if err != nil {
		return 0, err
	}
	quoted, err := quoteAll(columns)
	if err != nil {
		return 0, err
	}
	insertStmtStart := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", qt, strings.Join(quoted, ", "))
	var inserted int
	for chunkStart := 0; chunkStart < len(rows); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > len(rows) {
			chunkEnd = len(rows)
		}
		var insertStmtBuffer bytes.Buffer
		insertStmtBuffer.WriteString(insertStmtStart)
		args := make([]interface{}, 0, (chunkEnd-chunkStart)*len(columns))
		for i, row := range rows[chunkStart:chunkEnd] {
			if len(row) != len(columns) {
				return inserted, fmt.Errorf("row %d has %d values for %d columns", chunkStart+i, len(row), len(columns))
			}
			if i > 0 {
				insertStmtBuffer.WriteString(", ")
			}
			insertStmtBuffer.WriteString("(")
			for j, v := range row {
				if j > 0 {
					insertStmtBuffer.WriteString(", ")
				}
				args = append(args, v)
				insertStmtBuffer.WriteString(a.dialect.Placeholder(len(args)))
			}
			insertStmtBuffer.WriteString(")")
		}
		_, err = a.db.ExecContext(ctx, insertStmtBuffer.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("inserting rows %d to %d: %w", chunkStart, chunkEnd, err)
		}
		inserted = chunkEnd
	}
	return inserted, nil
}

func (a *adapter) ListRows(ctx context.Context, table string, columns []string) ([][]sql.NullString, error) {
	qt, err := quote(table)
	if err != nil {
		return nil, err
	}
	quoted, err := quoteAll(columns)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY "%s"`, strings.Join(quoted, ", "), qt, IDColumn)
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rows of %s: %w", table, err)
	}
	defer rows.Close()
	var result [][]sql.NullString
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row %d of %s: %w", len(result), table, err)
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func quote(identifier string) (string, error) {
	if identifier == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(identifier, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, identifier)
	}
	return fmt.Sprintf(`"%s"`, identifier), nil
}

func quoteAll(identifiers []string) ([]string, error) {
	quoted := make([]string, len(identifiers))
	for i, id := range identifiers {
		q, err := quote(id)
		if err != nil {
			return nil, err
		}
		quoted[i] = q
	}
	return quoted, nil
}
