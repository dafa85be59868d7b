package main

import (
	"context"
	"fmt"
	"log/slog"

	"bookcatalog/internal/app"
	"bookcatalog/internal/book"
)

type seedBook struct {
	workID string
	title  string
	year   int // 0 leaves the year for enrichment
}

type seedAuthor struct {
	name, country string
	books         []seedBook
}

var catalog = []seedAuthor{
	{"Roald Dahl", "UK", []seedBook{
		{"OL45804W", "Fantastic Mr Fox", 1970},
		{"OL45883W", "The Witches", 0},
		{"OL45790W", "Matilda", 0},
	}},
	{"Agatha Christie", "UK", []seedBook{
		{"OL471940W", "Murder on the Orient Express", 1934},
		{"OL471576W", "And Then There Were None", 0},
	}},
	{"Jorge Luis Borges", "Argentina", []seedBook{
		{"OL2663591W", "Ficciones", 0},
	}},
	{"Gabriel García Márquez", "Colombia", []seedBook{
		{"OL274505W", "Cien años de soledad", 0},
	}},
	{"Chinua Achebe", "Nigeria", []seedBook{
		{"OL3289556W", "Things Fall Apart", 1958},
	}},
}

// seed inserts the sample catalog. Works already present are left untouched,
// so running it twice is harmless.
func seed(ctx context.Context, store app.Store, logger *slog.Logger) (int, error) {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load existing books: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, b := range existing {
		known[b.WorkID] = true
	}

	inserted := 0
	for _, sa := range catalog {
		author := &book.Author{Name: sa.name, Country: sa.country}
		if err := store.SaveAuthor(ctx, author); err != nil {
			return inserted, fmt.Errorf("save author %q: %w", sa.name, err)
		}

		for _, sb := range sa.books {
			if known[sb.workID] {
				continue
			}
			b := &book.Book{WorkID: sb.workID, Title: sb.title, Author: author}
			if sb.year != 0 {
				year := sb.year
				b.Year = &year
			}
			if err := store.Save(ctx, b); err != nil {
				return inserted, fmt.Errorf("save book %s: %w", sb.workID, err)
			}
			inserted++
			logger.Debug("book seeded", slog.Int64("book_id", b.ID), slog.String("work_id", b.WorkID))
		}
	}
	return inserted, nil
}
