package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books/9", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONError(w, r, http.StatusNotFound, "Book with id 9 not found.")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, ErrorResponse{
		StatusCode: http.StatusNotFound,
		Message:    "Book with id 9 not found.",
		Error:      "Not Found",
		RequestID:  "req-1",
	}, resp)
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()

	Text(w, http.StatusOK, "done")

	assert.Equal(t, "done", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
