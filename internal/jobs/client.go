// Package jobs fetches job postings from external search APIs. Providers
// share one query shape; the aggregator tries them in order and fills up to
// the requested count, deduplicating by URL.
package jobs

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Query defaults applied when a field is zero.
const (
	DefaultCountry        = "us"
	DefaultPostingHours   = 24
	DefaultEmploymentType = "FULLTIME"
	DefaultMaxResults     = 20
)

// requestTimeout bounds each provider HTTP call.
const requestTimeout = 10 * time.Second

// SearchQuery describes one job search across providers.
type SearchQuery struct {
	JobTitle       string `validate:"required"`
	Country        string `validate:"omitempty,len=2,alpha"`
	PostingHours   int    `validate:"omitempty,min=1"`
	EmploymentType string `validate:"omitempty,oneof=FULLTIME PARTTIME CONTRACTOR INTERN"`
	MaxResults     int    `validate:"omitempty,min=1,max=50"`
	Location       string
}

// withDefaults fills zero fields with package defaults.
func (q SearchQuery) withDefaults() SearchQuery {
	if q.Country == "" {
		q.Country = DefaultCountry
	}
	if q.PostingHours == 0 {
		q.PostingHours = DefaultPostingHours
	}
	if q.EmploymentType == "" {
		q.EmploymentType = DefaultEmploymentType
	}
	if q.MaxResults == 0 {
		q.MaxResults = DefaultMaxResults
	}
	return q
}

// Client is a single job search provider.
type Client interface {
	// Name identifies the provider in logs and posting sources.
	Name() string
	// Search returns up to q.MaxResults postings for the query.
	Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error)
}

// Aggregator queries providers in order until it has enough postings. A
// failing provider is logged and skipped, never fatal.
type Aggregator struct {
	clients  []Client
	validate *validator.Validate
}

// NewAggregator creates an aggregator over the given providers, tried in
// argument order.
func NewAggregator(clients ...Client) *Aggregator {
	return &Aggregator{
		clients:  clients,
		validate: validator.New(),
	}
}

// Search runs the query against each provider until MaxResults postings
// are collected, deduplicating by URL. Postings without a URL are kept.
func (a *Aggregator) Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error) {
	q = q.withDefaults()
	if err := a.validate.Struct(q); err != nil {
		return nil, fmt.Errorf("invalid search query: %w", err)
	}

	var all []types.JobPosting
	seenURLs := make(map[string]bool)

	for _, client := range a.clients {
		if len(all) >= q.MaxResults {
			break
		}

		remaining := q
		remaining.MaxResults = q.MaxResults - len(all)

		found, err := client.Search(ctx, remaining)
		if err != nil {
			log.Printf("job search: %s failed: %v", client.Name(), err)
			continue
		}
		log.Printf("job search: %s returned %d postings for %q", client.Name(), len(found), q.JobTitle)

		for _, job := range found {
			if job.URL != "" {
				if seenURLs[job.URL] {
					continue
				}
				seenURLs[job.URL] = true
			}
			all = append(all, job)
		}
	}

	if len(all) > q.MaxResults {
		all = all[:q.MaxResults]
	}
	return all, nil
}

// postingWindows are the progressively wider date filters tried by
// SearchWithFallbackDates: 1 day, 3 days, 7 days, 30 days.
var postingWindows = []int{24, 72, 168, 720}

// SearchWithFallbackDates retries the search with progressively older
// posting windows until something comes back. It returns the postings and
// the window, in hours, that produced them.
func (a *Aggregator) SearchWithFallbackDates(ctx context.Context, q SearchQuery) ([]types.JobPosting, int, error) {
	for _, hours := range postingWindows {
		q.PostingHours = hours
		jobs, err := a.Search(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		if len(jobs) > 0 {
			return jobs, hours, nil
		}
		log.Printf("job search: no postings within %d hours for %q, widening window", hours, q.JobTitle)
	}
	return nil, postingWindows[len(postingWindows)-1], nil
}

// stripHTML flattens HTML descriptions to plain text. Non-HTML input is
// returned unchanged.
func stripHTML(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// formatSalary renders an annual salary range like "$90,000 - $120,000".
func formatSalary(minSalary, maxSalary float64) string {
	switch {
	case minSalary > 0 && maxSalary > 0:
		return fmt.Sprintf("$%s - $%s", formatThousands(minSalary), formatThousands(maxSalary))
	case minSalary > 0:
		return fmt.Sprintf("$%s+", formatThousands(minSalary))
	default:
		return ""
	}
}

func formatThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var sb strings.Builder
	lead := n % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// daysOld converts a posting-hours window to whole days, minimum one.
func daysOld(postingHours int) int {
	days := postingHours / 24
	if days < 1 {
		days = 1
	}
	return days
}

// countryName maps a country code to a human-readable location for
// providers that take free-text locations.
func countryName(code string) string {
	switch strings.ToLower(code) {
	case "us":
		return "United States"
	case "uk":
		return "United Kingdom"
	case "ca":
		return "Canada"
	case "au":
		return "Australia"
	case "de":
		return "Germany"
	default:
		return strings.ToUpper(code)
	}
}
