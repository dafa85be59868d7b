package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectBooks = `
	SELECT b.id, b.work_id, b.title, b.year, a.id, a.name, a.country
	FROM books b
	JOIN authors a ON a.id = b.author_id`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// rowScanner is satisfied by pgx.Row, pgx.Rows and *sql.Row(s).
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (Book, error) {
	var (
		b Book
		a Author
	)
	if err := row.Scan(&b.ID, &b.WorkID, &b.Title, &b.Year, &a.ID, &a.Name, &a.Country); err != nil {
		return Book{}, err
	}
	b.Author = &a
	return b, nil
}

func (r *PostgresRepo) query(ctx context.Context, sql string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql, args...)
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

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.query(ctx, selectBooks+` ORDER BY b.id`)
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, selectBooks+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) FindByAuthorCountryAndMinYear(ctx context.Context, country string, minYear *int) ([]Book, error) {
	sql := selectBooks + ` WHERE a.country = $1`
	args := []any{country}
	if minYear != nil {
		sql += ` AND b.year >= $2`
		args = append(args, *minYear)
	}
	sql += ` ORDER BY b.year ASC NULLS LAST, b.id ASC`
	return r.query(ctx, sql, args...)
}

// Save upserts by id. work_id is never rewritten and a NULL year never
// replaces a stored one.
func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	var authorID *int64
	if b.Author != nil {
		authorID = &b.Author.ID
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		const insertSQL = `
			INSERT INTO books (work_id, title, year, author_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id`
		if err := r.db.QueryRow(timeoutCtx, insertSQL, b.WorkID, b.Title, b.Year, authorID).Scan(&b.ID); err != nil {
			return fmt.Errorf("insert book: %w", err)
		}
		return nil
	}

	const upsertSQL = `
		INSERT INTO books (id, work_id, title, year, author_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = COALESCE(EXCLUDED.year, books.year),
			author_id = COALESCE(EXCLUDED.author_id, books.author_id),
			updated_at = NOW()`

	if _, err := r.db.Exec(timeoutCtx, upsertSQL, b.ID, b.WorkID, b.Title, b.Year, authorID); err != nil {
		return fmt.Errorf("upsert book %d: %w", b.ID, err)
	}
	return nil
}

// SaveAuthor inserts or updates an author. Used by the seed command only.
func (r *PostgresRepo) SaveAuthor(ctx context.Context, a *Author) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	const sql = `
		INSERT INTO authors (name, country)
		VALUES ($1, $2)
		ON CONFLICT (name, country) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`
	return r.db.QueryRow(timeoutCtx, sql, a.Name, a.Country).Scan(&a.ID)
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
