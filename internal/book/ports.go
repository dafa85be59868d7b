package book

import (
	"context"

	"bookcatalog/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
	FindByAuthorCountryAndMinYear(ctx context.Context, country string, minYear *int) ([]Book, error)
	Save(ctx context.Context, book *Book) error
}

// WorkFetcher looks up a work in the bibliographic source.
type WorkFetcher interface {
	GetWorkDetails(ctx context.Context, workID string) (*openlibrary.WorkDetails, error)
}
