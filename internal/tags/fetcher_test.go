package tags

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"question":{
			"questionFrontendId":"56",
			"title":"Merge Intervals",
			"difficulty":"Medium",
			"topicTags":[{"slug":"array"},{"slug":"sorting"}]}}}`))
	}))
	defer srv.Close()

	meta, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "merge-intervals")
	require.NoError(t, err)

	assert.Equal(t, 56, meta.Number)
	assert.Equal(t, "Merge Intervals", meta.Title)
	assert.Equal(t, "Medium", meta.Difficulty)
	assert.Equal(t, []string{"array", "sorting"}, meta.Tags)
}

func TestHTTPFetcher_UnknownProblem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"question":null}}`))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "no-such-slug")
	assert.Error(t, err)
}

func TestHTTPFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background(), "two-sum")
	assert.Error(t, err)
}
