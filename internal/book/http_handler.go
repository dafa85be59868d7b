package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
)

// EnrichmentDoneMessage is returned by the enrichment endpoint whatever the
// per-book outcomes were.
const EnrichmentDoneMessage = "All books updated with publication years"

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{service: service, logger: logger.With(slog.String("component", "book_http"))}
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /books/{id}
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := pathParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusNotFound, bookNotFound(raw).Message)
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// QueryByCountry handles GET /books/query/{country}?from={year}
// @Summary Books by author country
// @Tags books
// @Produce json
// @Param country path string true "Author country"
// @Param from query int false "Minimum publication year"
// @Success 200 {array} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/query/{country} [get]
func (h *HTTPHandler) QueryByCountry(w http.ResponseWriter, r *http.Request) {
	country := pathParam(r, "country")

	var minYear *int
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := strconv.Atoi(fromStr)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "Query parameter 'from' must be an integer")
			return
		}
		minYear = &from
	}

	books, err := h.service.FindByCountryAndYear(r.Context(), country, minYear)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// EnrichAll handles PATCH /books/update-all-with-year
// @Summary Fill missing publication years from Open Library
// @Tags books
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/update-all-with-year [patch]
func (h *HTTPHandler) EnrichAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.EnrichAllBooksWithYear(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.logger.Info("enrichment requested",
		slog.String("request_id", httpx.RequestIDFrom(r)),
		slog.String("subject", httpx.SubjectFrom(r)),
		slog.String("role", httpx.RoleFrom(r)),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed),
	)
	httpx.Text(w, http.StatusOK, EnrichmentDoneMessage)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		httpx.JSONError(w, r, http.StatusNotFound, nf.Message)
		return
	}
	h.internalError(w, r, err)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("request_id", httpx.RequestIDFrom(r)),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	httpx.JSONError(w, r, http.StatusInternalServerError, "Internal server error")
}
