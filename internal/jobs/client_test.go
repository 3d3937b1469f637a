package jobs

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

type stubClient struct {
	name string
	jobs []types.JobPosting
	err  error

	calls int
}

func (s *stubClient) Name() string { return s.name }

func (s *stubClient) Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.jobs) > q.MaxResults {
		return s.jobs[:q.MaxResults], nil
	}
	return s.jobs, nil
}

func posting(title, url string) types.JobPosting {
	return types.JobPosting{Title: title, URL: url, Source: "stub"}
}

func TestAggregatorFillsFromFallbackProviders(t *testing.T) {
	first := &stubClient{name: "first", jobs: []types.JobPosting{
		posting("A", "https://a"),
		posting("B", "https://b"),
	}}
	second := &stubClient{name: "second", jobs: []types.JobPosting{
		posting("C", "https://c"),
	}}

	agg := NewAggregator(first, second)
	jobs, err := agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer", MaxResults: 3})

	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestAggregatorStopsWhenSatisfied(t *testing.T) {
	first := &stubClient{name: "first", jobs: []types.JobPosting{
		posting("A", "https://a"),
		posting("B", "https://b"),
	}}
	second := &stubClient{name: "second"}

	agg := NewAggregator(first, second)
	jobs, err := agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer", MaxResults: 2})

	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Zero(t, second.calls)
}

func TestAggregatorSkipsFailingProvider(t *testing.T) {
	first := &stubClient{name: "first", err: fmt.Errorf("quota exceeded")}
	second := &stubClient{name: "second", jobs: []types.JobPosting{posting("A", "https://a")}}

	agg := NewAggregator(first, second)
	jobs, err := agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer"})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "A", jobs[0].Title)
}

func TestAggregatorDeduplicatesByURL(t *testing.T) {
	first := &stubClient{name: "first", jobs: []types.JobPosting{
		posting("A", "https://same"),
		posting("No URL 1", ""),
	}}
	second := &stubClient{name: "second", jobs: []types.JobPosting{
		posting("A again", "https://same"),
		posting("No URL 2", ""),
	}}

	agg := NewAggregator(first, second)
	jobs, err := agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer", MaxResults: 10})

	require.NoError(t, err)
	require.Len(t, jobs, 3)
	// Postings without URLs are all kept.
	assert.Equal(t, "No URL 1", jobs[1].Title)
	assert.Equal(t, "No URL 2", jobs[2].Title)
}

func TestAggregatorValidatesQuery(t *testing.T) {
	agg := NewAggregator()

	_, err := agg.Search(context.Background(), SearchQuery{})
	assert.Error(t, err, "job title is required")

	_, err = agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer", Country: "usa"})
	assert.Error(t, err, "country must be a two-letter code")

	_, err = agg.Search(context.Background(), SearchQuery{JobTitle: "Engineer", EmploymentType: "GIG"})
	assert.Error(t, err)
}

func TestSearchWithFallbackDates(t *testing.T) {
	empty := &stubClient{name: "empty"}
	agg := NewAggregator(empty)

	jobs, hours, err := agg.SearchWithFallbackDates(context.Background(), SearchQuery{JobTitle: "Engineer"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Equal(t, 720, hours)
	// One call per widening window.
	assert.Equal(t, 4, empty.calls)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Python and Go", "Python and Go"},
		{"tags removed", "<p>Python <b>and</b> Go</p>", "Python and Go"},
		{"lists flattened", "<ul><li>Docker</li><li>SQL</li></ul>", "Docker SQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripHTML(tt.in))
		})
	}
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "$90,000 - $120,000", formatSalary(90000, 120000))
	assert.Equal(t, "$85,500+", formatSalary(85500, 0))
	assert.Empty(t, formatSalary(0, 0))
}

func TestDaysOld(t *testing.T) {
	assert.Equal(t, 1, daysOld(12))
	assert.Equal(t, 1, daysOld(24))
	assert.Equal(t, 3, daysOld(72))
	assert.Equal(t, 30, daysOld(720))
}

func TestDatePostedFilter(t *testing.T) {
	assert.Equal(t, "today", datePostedFilter(24))
	assert.Equal(t, "3days", datePostedFilter(72))
	assert.Equal(t, "week", datePostedFilter(168))
	assert.Equal(t, "month", datePostedFilter(720))
}
