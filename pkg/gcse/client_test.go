package gcse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		qs := r.URL.Query()
		assert.Equal(t, "test-key", qs.Get("key"))
		assert.Equal(t, "test-cx", qs.Get("cx"))
		assert.Equal(t, "10", qs.Get("num"))
		assert.Equal(t, "11", qs.Get("start"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Items: []Item{
				{Title: "John Roe - PM", Link: "https://x.com/in/john", Snippet: "snip"},
			},
			Queries: Queries{NextPage: []PageInfo{{StartIndex: 21}}},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", "test-cx", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "q", 10, 11)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "https://x.com/in/john", resp.Items[0].Link)
	assert.Len(t, resp.Queries.NextPage, 1)
}

func TestSearch_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SearchResponse{})
	}))
	defer srv.Close()

	client := NewClient("k", "cx", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "q", 10, 1)

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.Queries.NextPage)
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	client := NewClient("bad", "cx", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), "q", 10, 1)

	assert.Nil(t, resp)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
}

func TestSearch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("k", "cx", WithBaseURL(srv.URL))
	_, err := client.Search(ctx, "q", 10, 1)
	assert.Error(t, err)
}
