package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoobleSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/secret-key", r.URL.Path)

		var req joobleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Backend Developer", req.Keywords)
		assert.Equal(t, "United States", req.Location)
		assert.Equal(t, "1", req.SearchMode)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [
				{
					"title": "Backend Developer",
					"company": "Acme",
					"location": "Boston, MA",
					"snippet": "Go and <b>Postgres</b>",
					"link": "https://jooble.example/1",
					"salary": "$100k",
					"updated": "2026-08-28"
				},
				{
					"title": "Another",
					"company": "",
					"location": "",
					"snippet": "",
					"link": "https://jooble.example/2"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewJoobleClient("secret-key")
	client.baseURL = server.URL

	jobs, err := client.Search(context.Background(), SearchQuery{JobTitle: "Backend Developer", MaxResults: 2})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Go and Postgres", jobs[0].Description)
	assert.Equal(t, "jooble", jobs[0].Source)

	// Blank fields fall back sensibly.
	assert.Equal(t, "Unknown", jobs[1].Company)
	assert.Equal(t, "United States", jobs[1].Location)
}

func TestJoobleSearchCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs": [{"title": "A"}, {"title": "B"}, {"title": "C"}]}`))
	}))
	defer server.Close()

	client := NewJoobleClient("secret-key")
	client.baseURL = server.URL

	jobs, err := client.Search(context.Background(), SearchQuery{JobTitle: "Engineer", MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestJoobleSearchRequiresKey(t *testing.T) {
	client := NewJoobleClient("")
	_, err := client.Search(context.Background(), SearchQuery{JobTitle: "Engineer"})
	assert.Error(t, err)
}
