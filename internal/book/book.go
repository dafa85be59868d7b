package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a book is not found.
var ErrNotFound = errors.New("book not found")

// Author is the primary author of a book. Authors are read-only here.
type Author struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Book represents a catalog book with its author attached.
type Book struct {
	ID     int64   `json:"id"`
	WorkID string  `json:"workId"`
	Title  string  `json:"title"`
	Year   *int    `json:"year"`
	Author *Author `json:"author,omitempty"`
}

// NotFoundError carries the client-facing message for a missing resource.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func bookNotFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Book with id %s not found.", id)}
}

func noBooksFound(country string, minYear *int) *NotFoundError {
	msg := fmt.Sprintf("No books found with authors from '%s'", country)
	if minYear != nil {
		msg += fmt.Sprintf(" and published from year %d", *minYear)
	}
	return &NotFoundError{Message: msg}
}
