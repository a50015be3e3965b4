package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/internal/resilience"
)

func TestTextSearchParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1","name":"A"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := c.TextSearch(context.Background(), TextSearchRequest{
		Query:        "plumbers in Austin",
		Location:     "30.2672,-97.7431",
		RadiusMeters: 5000,
	})
	require.NoError(t, err)

	assert.Equal(t, "plumbers in Austin", got.Get("query"))
	assert.Equal(t, "30.2672,-97.7431", got.Get("location"))
	assert.Equal(t, "5000", got.Get("radius"))
	assert.Equal(t, "test-key", got.Get("key"))
	assert.Empty(t, got.Get("pagetoken"))

	assert.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "p1", resp.Results[0].PlaceID)
}

func TestTextSearchPageToken(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.TextSearch(context.Background(), TextSearchRequest{
		Query:     "ignored on continuation",
		PageToken: "tok-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "tok-123", got.Get("pagetoken"))
	assert.Empty(t, got.Get("query"))
	assert.Empty(t, got.Get("location"))
}

func TestDetailsParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/details/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","result":{"place_id":"p1","name":"A","formatted_phone_number":"555-0100"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := c.Details(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", got.Get("place_id"))
	assert.Equal(t, detailsFields, got.Get("fields"))
	assert.Equal(t, "555-0100", resp.Result.PhoneNumber)
}

func TestNon200Transient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.TextSearch(context.Background(), TextSearchRequest{Query: "x"})
	require.Error(t, err)
	assert.True(t, resilience.IsTransient(err))
}

func TestNon200Permanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Details(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, resilience.IsTransient(err))
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.TextSearch(ctx, TextSearchRequest{Query: "x"})
	require.Error(t, err)
}
