package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"intellisql/models"
	"intellisql/validation"

	_ "github.com/mattn/go-sqlite3"
)

var ErrDisallowedStatement = errors.New("only SELECT queries are allowed")

// Opener returns a fresh database handle. The caller owns it and closes it.
type Opener func() (*sql.DB, error)

// SQLiteService runs validated statements against the student database.
// Every call opens its own handle and closes it before returning, so no
// connection outlives a request.
type SQLiteService struct {
	open Opener
}

func NewSQLiteService(dbPath string, readOnly bool) (*SQLiteService, error) {
	if dbPath == "" {
		return nil, errors.New("database path is empty")
	}

	dsn := buildDSN(dbPath, readOnly)
	return NewSQLiteServiceWithOpener(func() (*sql.DB, error) {
		return sql.Open("sqlite3", dsn)
	}), nil
}

func NewSQLiteServiceWithOpener(open Opener) *SQLiteService {
	return &SQLiteService{open: open}
}

func buildDSN(dbPath string, readOnly bool) string {
	dsn := "file:" + dbPath
	if readOnly {
		dsn += "?mode=ro"
	}
	return dsn
}

// Execute rejects anything that does not start with SELECT before the
// database is touched, then materializes the full result set.
func (s *SQLiteService) Execute(ctx context.Context, query string) (*models.SQLResult, error) {
	if !validation.IsSelectStatement(query) {
		return nil, ErrDisallowedStatement
	}

	db, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	resultRows := make([][]interface{}, 0)

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))

		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]interface{}, len(columns))
		for i, val := range values {
			row[i] = normalizeValue(val)
		}

		resultRows = append(resultRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &models.SQLResult{
		Columns: columns,
		Rows:    resultRows,
	}, nil
}

// Ping opens the database, checks it answers, and closes it again.
func (s *SQLiteService) Ping(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return db.PingContext(ctx)
}

// Some drivers hand TEXT back as []byte; keep it printable and JSON-friendly.
func normalizeValue(val interface{}) interface{} {
	if b, ok := val.([]byte); ok {
		return string(b)
	}
	return val
}
