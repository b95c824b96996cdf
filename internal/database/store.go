// internal/database/store.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Store executes parameterized statements against the database. A Store
// obtained inside Transaction routes every call through that transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Read runs a query with positional parameters and returns every row.
func (s *Store) Read(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanRows(rows, 0)
}

// ReadOne returns the first row of a query. ok is false when the query
// produced no rows; that is not an error.
func (s *Store) ReadOne(ctx context.Context, query string, args ...interface{}) (row Row, ok bool, err error) {
	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return Row{}, false, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	result, err := scanRows(rows, 1)
	if err != nil {
		return Row{}, false, err
	}
	if len(result) == 0 {
		return Row{}, false, nil
	}
	return result[0], true, nil
}

// Scan runs a query, scans the result into dest (a pointer to a struct or to
// a slice of structs) and reports how many rows were read.
func (s *Store) Scan(ctx context.Context, dest interface{}, query string, args ...interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return 0, fmt.Errorf("query failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Write executes an insert, update or delete and reports the affected rows.
// Outside a transaction the statement is committed before Write returns.
func (s *Store) Write(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, fmt.Errorf("statement failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Insert creates a model row and fills in its generated primary key.
func (s *Store) Insert(ctx context.Context, value interface{}) error {
	if err := s.db.WithContext(ctx).Create(value).Error; err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

// Transaction runs fn atomically: it commits when fn returns nil and rolls
// back on error or panic.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func scanRows(rows *sql.Rows, limit int) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		result = append(result, Row{columns: columns, values: values})
		if limit > 0 && len(result) == limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}
