package book

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
)

// EnrichConfig controls the publication year enrichment.
type EnrichConfig struct {
	// OverwriteExisting re-fetches books that already have a year and
	// replaces it. When false those books are skipped without a lookup.
	OverwriteExisting bool
	// Workers bounds concurrent lookups. Values below 1 mean sequential.
	Workers int
}

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	works  WorkFetcher
	cfg    EnrichConfig
	logger *slog.Logger
}

// NewService creates a new book service. works may be nil when the caller
// never runs the enrichment.
func NewService(repo Repository, works WorkFetcher, cfg EnrichConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		repo:   repo,
		works:  works,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "book_service")),
	}
}

// ListBooks returns every book with its author.
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// GetBook returns a book by id or a *NotFoundError.
func (s *Service) GetBook(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, bookNotFound(strconv.FormatInt(id, 10))
		}
		return Book{}, err
	}
	return b, nil
}

// FindByCountryAndYear returns books whose author is from country, optionally
// published in or after minYear, ordered by year. An empty result is a
// *NotFoundError.
func (s *Service) FindByCountryAndYear(ctx context.Context, country string, minYear *int) ([]Book, error) {
	books, err := s.repo.FindByAuthorCountryAndMinYear(ctx, country, minYear)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, noBooksFound(country, minYear)
	}
	return books, nil
}
