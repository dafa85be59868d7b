package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestService_ListBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil, EnrichConfig{}, nil)
	ctx := context.Background()

	t.Run("returns books", func(t *testing.T) {
		books := []Book{{ID: 1, WorkID: "OL1W", Author: &Author{ID: 1, Name: "A", Country: "UK"}}}
		mockRepo.EXPECT().FindAll(ctx).Return(books, nil)

		got, err := service.ListBooks(ctx)
		assert.NoError(t, err)
		assert.Equal(t, books, got)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(ctx).Return(nil, nil)

		got, err := service.ListBooks(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))

		_, err := service.ListBooks(ctx)
		assert.Error(t, err)
	})
}

func TestService_GetBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil, EnrichConfig{}, nil)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		b := Book{ID: 7, WorkID: "OL7W", Author: &Author{ID: 2, Name: "B", Country: "FR"}}
		mockRepo.EXPECT().FindByID(ctx, int64(7)).Return(b, nil)

		got, err := service.GetBook(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, b, got)
		assert.NotNil(t, got.Author)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, int64(42)).Return(Book{}, ErrNotFound)

		_, err := service.GetBook(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "Book with id 42 not found.")
	})

	t.Run("store error is not a not-found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, int64(1)).Return(Book{}, errors.New("conn reset"))

		_, err := service.GetBook(ctx, 1)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
	})
}

func TestService_FindByCountryAndYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil, EnrichConfig{}, nil)
	ctx := context.Background()

	t.Run("delegates filter", func(t *testing.T) {
		from := intPtr(1950)
		books := []Book{{ID: 1, Year: intPtr(1960)}, {ID: 2, Year: intPtr(1970)}}
		mockRepo.EXPECT().FindByAuthorCountryAndMinYear(ctx, "UK", from).Return(books, nil)

		got, err := service.FindByCountryAndYear(ctx, "UK", from)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty without year", func(t *testing.T) {
		mockRepo.EXPECT().FindByAuthorCountryAndMinYear(ctx, "Peru", (*int)(nil)).Return([]Book{}, nil)

		_, err := service.FindByCountryAndYear(ctx, "Peru", nil)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "No books found with authors from 'Peru'")
	})

	t.Run("empty with year", func(t *testing.T) {
		mockRepo.EXPECT().FindByAuthorCountryAndMinYear(ctx, "Peru", gomock.Any()).Return(nil, nil)

		_, err := service.FindByCountryAndYear(ctx, "Peru", intPtr(2000))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "No books found with authors from 'Peru' and published from year 2000")
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().FindByAuthorCountryAndMinYear(ctx, "UK", gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.FindByCountryAndYear(ctx, "UK", nil)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
	})
}
