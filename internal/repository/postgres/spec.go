package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// entitySpec is the single camelCase⇄snake_case translation point for one
// entity: the column list drives the insert, the conflict update, and the
// select, so the read and write paths cannot drift apart.
type entitySpec[T any] struct {
	table   string   // fully prefixed table name
	columns []string // snake_case column names; columns[0] is the id
	values  func(T) ([]any, error)
	scan    func(rows pgx.Rows) (T, error)
}

func (s *entitySpec[T]) upsert(ctx context.Context, pool *pgxpool.Pool, item T) error {
	vals, err := s.values(item)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", s.table, err)
	}

	assignments := make([]string, 0, len(s.columns)-1)
	for _, col := range s.columns[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s`,
		s.table,
		strings.Join(s.columns, ", "),
		placeholders(len(s.columns)),
		s.columns[0],
		strings.Join(assignments, ", "),
	)

	if _, err := pool.Exec(ctx, query, vals...); err != nil {
		return fmt.Errorf("upsert %s: %w", s.table, err)
	}
	return nil
}

func (s *entitySpec[T]) delete(ctx context.Context, pool *pgxpool.Pool, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.table, s.columns[0])
	if _, err := pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete from %s: %w", s.table, err)
	}
	return nil
}

// selectAll returns every row in insertion order. The result is never nil:
// an empty table is an empty list, not "never stored" (explicit seeding via
// cmd/seed decides what a fresh remote database contains).
func (s *entitySpec[T]) selectAll(ctx context.Context, pool *pgxpool.Pool) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, %s`,
		strings.Join(s.columns, ", "), s.table, s.columns[0])

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return items, nil
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
