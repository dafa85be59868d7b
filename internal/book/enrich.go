package book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNoLocation    = errors.New("no location to fall back to")
	ErrNoPublishDate = errors.New("no publish date after fallback lookup")
)

// Outcome is the terminal state of one book in an enrichment pass.
type Outcome string

const (
	OutcomeUpdated        Outcome = "UPDATED"
	OutcomeSkippedNoYear  Outcome = "SKIPPED_NO_YEAR"
	OutcomeSkippedHasYear Outcome = "SKIPPED_HAS_YEAR"
	OutcomeFailed         Outcome = "FAILED"
)

// EnrichResult describes what happened to a single book.
type EnrichResult struct {
	BookID     int64
	WorkID     string
	Outcome    Outcome
	Year       *int
	FallbackID string
	Err        error
}

// EnrichReport summarises an enrichment pass. Per-book failures are recorded
// here and never returned as errors.
type EnrichReport struct {
	Results  []EnrichResult
	Updated  int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// EnrichAllBooksWithYear looks up every book's publication year and stores
// it. It returns once every book has been attempted. The error is non-nil
// only when the book list cannot be loaded or ctx is done.
func (s *Service) EnrichAllBooksWithYear(ctx context.Context) (EnrichReport, error) {
	if s.works == nil {
		return EnrichReport{}, errors.New("enrichment: no work fetcher configured")
	}

	start := time.Now()
	log := s.logger.With(slog.String("op", "enrich_all_books_with_year"))

	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return EnrichReport{}, fmt.Errorf("enrichment: load books: %w", err)
	}
	log.Info("enrichment started",
		slog.Int("books", len(books)),
		slog.Int("workers", s.cfg.Workers),
		slog.Bool("overwrite_existing", s.cfg.OverwriteExisting),
	)

	results := make([]EnrichResult, len(books))

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i := range books {
		b := books[i]
		g.Go(func() error {
			results[i] = s.enrichBook(ctx, log, b)
			return nil
		})
	}
	_ = g.Wait()

	report := EnrichReport{Results: results, Duration: time.Since(start)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeUpdated:
			report.Updated++
		case OutcomeFailed:
			report.Failed++
		default:
			report.Skipped++
		}
	}

	log.Info("enrichment finished",
		slog.Int("updated", report.Updated),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.Duration),
	)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Service) enrichBook(ctx context.Context, log *slog.Logger, b Book) EnrichResult {
	res := EnrichResult{BookID: b.ID, WorkID: b.WorkID}
	log = log.With(slog.Int64("book_id", b.ID), slog.String("work_id", b.WorkID))

	fail := func(err error) EnrichResult {
		res.Outcome = OutcomeFailed
		res.Err = err
		log.Warn("book enrichment failed", slog.Any("error", err))
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if b.Year != nil && !s.cfg.OverwriteExisting {
		res.Outcome = OutcomeSkippedHasYear
		res.Year = b.Year
		log.Debug("book already has a year", slog.Int("year", *b.Year))
		return res
	}

	details, err := s.works.GetWorkDetails(ctx, b.WorkID)
	if err != nil {
		return fail(err)
	}

	date, ok := details.PublishDate()
	if !ok {
		loc, ok := ExtractLocation(details.LocationPath())
		if !ok {
			return fail(ErrNoLocation)
		}
		res.FallbackID = loc
		log.Info("falling back to location", slog.String("fallback_work_id", loc))

		details, err = s.works.GetWorkDetails(ctx, loc)
		if err != nil {
			return fail(err)
		}
		if date, ok = details.PublishDate(); !ok {
			return fail(ErrNoPublishDate)
		}
	}

	year, ok := ExtractYear(date)
	if !ok {
		res.Outcome = OutcomeSkippedNoYear
		log.Info("no year in publish date", slog.String("first_publish_date", date))
		return res
	}

	b.Year = &year
	if err := s.repo.Save(ctx, &b); err != nil {
		return fail(fmt.Errorf("save book: %w", err))
	}

	res.Outcome = OutcomeUpdated
	res.Year = &year
	log.Info("book year updated", slog.Int("year", year))
	return res
}
