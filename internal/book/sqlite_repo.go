package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteRepo is the embedded store used for local runs and tests. It shares
// the schema and semantics of PostgresRepo.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) query(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.query(ctx, selectBooks+` ORDER BY b.id`)
}

func (r *SQLiteRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx, selectBooks+` WHERE b.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *SQLiteRepo) FindByAuthorCountryAndMinYear(ctx context.Context, country string, minYear *int) ([]Book, error) {
	query := selectBooks + ` WHERE a.country = ?`
	args := []any{country}
	if minYear != nil {
		query += ` AND b.year >= ?`
		args = append(args, *minYear)
	}
	query += ` ORDER BY b.year ASC NULLS LAST, b.id ASC`
	return r.query(ctx, query, args...)
}

func (r *SQLiteRepo) Save(ctx context.Context, b *Book) error {
	var authorID *int64
	if b.Author != nil {
		authorID = &b.Author.ID
	}

	if b.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO books (work_id, title, year, author_id) VALUES (?, ?, ?, ?)`,
			b.WorkID, b.Title, b.Year, authorID)
		if err != nil {
			return fmt.Errorf("insert book: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert book: %w", err)
		}
		b.ID = id
		return nil
	}

	const upsertSQL = `
		INSERT INTO books (id, work_id, title, year, author_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			year = COALESCE(excluded.year, books.year),
			author_id = COALESCE(excluded.author_id, books.author_id),
			updated_at = CURRENT_TIMESTAMP`

	if _, err := r.db.ExecContext(ctx, upsertSQL, b.ID, b.WorkID, b.Title, b.Year, authorID); err != nil {
		return fmt.Errorf("upsert book %d: %w", b.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) SaveAuthor(ctx context.Context, a *Author) error {
	const query = `
		INSERT INTO authors (name, country)
		VALUES (?, ?)
		ON CONFLICT (name, country) DO UPDATE SET name = excluded.name
		RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.Country).Scan(&a.ID)
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
