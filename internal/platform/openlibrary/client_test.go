package openlibrary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, UserAgent: "test-agent"})
}

func TestClient_GetWorkDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotPath, gotUA string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"key":"/works/OL45804W","title":"Fantastic Mr Fox","type":{"key":"/type/work"},"first_publish_date":"October 1, 1970"}`))
		})

		d, err := c.GetWorkDetails(ctx, "OL45804W")
		require.NoError(t, err)
		assert.Equal(t, "/works/OL45804W.json", gotPath)
		assert.Equal(t, "test-agent", gotUA)
		assert.Equal(t, "/works/OL45804W", d.Key)
		assert.Equal(t, "Fantastic Mr Fox", d.Title)
		assert.Equal(t, "/type/work", d.Type)

		date, ok := d.PublishDate()
		assert.True(t, ok)
		assert.Equal(t, "October 1, 1970", date)
		assert.Equal(t, "", d.LocationPath())
	})

	t.Run("redirect record", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"type":{"key":"/type/redirect"},"location":"/works/OL1W"}`))
		})

		d, err := c.GetWorkDetails(ctx, "OL2W")
		require.NoError(t, err)
		_, ok := d.PublishDate()
		assert.False(t, ok)
		assert.Equal(t, "/works/OL1W", d.LocationPath())
		assert.Equal(t, "/type/redirect", d.Type)
	})

	t.Run("non-2xx is a status error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.GetWorkDetails(ctx, "missing")
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("server error is not retried", func(t *testing.T) {
		calls := 0
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := c.GetWorkDetails(ctx, "OL1W")
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("empty work id", func(t *testing.T) {
		c := NewClient(Options{})
		_, err := c.GetWorkDetails(ctx, "  ")
		assert.Error(t, err)
	})
}

func TestDecodeWorkDetails(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		date    string
		hasDate bool
	}{
		{name: "object with date", body: `{"first_publish_date":"1994-03-01"}`, date: "1994-03-01", hasDate: true},
		{name: "object without date", body: `{"title":"x"}`},
		{name: "null date", body: `{"first_publish_date":null}`},
		{name: "null payload", body: `null`, wantErr: true},
		{name: "array payload", body: `[{"first_publish_date":"1994"}]`, wantErr: true},
		{name: "string payload", body: `"1994"`, wantErr: true},
		{name: "invalid json", body: `{"first_publish_date":`, wantErr: true},
		{name: "date not a string", body: `{"first_publish_date":1994}`, wantErr: true},
		{name: "location not a string", body: `{"location":{"path":"/works/OL1W"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeWorkDetails([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			date, ok := d.PublishDate()
			assert.Equal(t, tt.hasDate, ok)
			assert.Equal(t, tt.date, date)
		})
	}
}
