package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

const (
	jsearchBaseURL     = "https://jsearch.p.rapidapi.com/search"
	jsearchDefaultHost = "jsearch.p.rapidapi.com"
)

// JSearchClient queries the JSearch API via RapidAPI.
type JSearchClient struct {
	apiKey  string
	apiHost string
	baseURL string
	http    *http.Client
}

// NewJSearchClient creates a client with the given RapidAPI key. An empty
// host uses the default JSearch host.
func NewJSearchClient(apiKey, apiHost string) *JSearchClient {
	if apiHost == "" {
		apiHost = jsearchDefaultHost
	}
	return &JSearchClient{
		apiKey:  apiKey,
		apiHost: apiHost,
		baseURL: jsearchBaseURL,
		http:    newHTTPClient(),
	}
}

// Name identifies the provider.
func (c *JSearchClient) Name() string { return "jsearch" }

type jsearchResponse struct {
	Data []struct {
		JobTitle        string  `json:"job_title"`
		EmployerName    string  `json:"employer_name"`
		JobCity         string  `json:"job_city"`
		JobState        string  `json:"job_state"`
		JobCountry      string  `json:"job_country"`
		JobDescription  string  `json:"job_description"`
		JobApplyLink    string  `json:"job_apply_link"`
		JobGoogleLink   string  `json:"job_google_link"`
		JobMinSalary    float64 `json:"job_min_salary"`
		JobMaxSalary    float64 `json:"job_max_salary"`
		JobPostedAtUTC  string  `json:"job_posted_at_datetime_utc"`
	} `json:"data"`
}

// Search queries JSearch with a free-text "title in location" query.
func (c *JSearchClient) Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("jsearch API key not configured")
	}
	q = q.withDefaults()

	query := q.JobTitle
	if q.Location != "" {
		query = fmt.Sprintf("%s in %s", q.JobTitle, q.Location)
	} else if q.Country != "" {
		query = fmt.Sprintf("%s in %s", q.JobTitle, countryName(q.Country))
	}

	params := url.Values{
		"query":            {query},
		"date_posted":      {datePostedFilter(q.PostingHours)},
		"employment_types": {q.EmploymentType},
		"num_pages":        {"1"},
		"page":             {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build jsearch request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch returned status %d", resp.StatusCode)
	}

	var data jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode jsearch response: %w", err)
	}

	results := data.Data
	if len(results) > q.MaxResults {
		results = results[:q.MaxResults]
	}

	jobs := make([]types.JobPosting, 0, len(results))
	for _, r := range results {
		var locationParts []string
		for _, part := range []string{r.JobCity, r.JobState, r.JobCountry} {
			if part != "" {
				locationParts = append(locationParts, part)
			}
		}
		jobLocation := strings.Join(locationParts, ", ")
		if jobLocation == "" {
			jobLocation = "Remote"
		}

		jobURL := r.JobApplyLink
		if jobURL == "" {
			jobURL = r.JobGoogleLink
		}

		company := r.EmployerName
		if company == "" {
			company = "Unknown"
		}

		jobs = append(jobs, types.JobPosting{
			Title:       r.JobTitle,
			Company:     company,
			Location:    jobLocation,
			Description: stripHTML(r.JobDescription),
			URL:         jobURL,
			Salary:      formatSalary(r.JobMinSalary, r.JobMaxSalary),
			PostedDate:  r.JobPostedAtUTC,
			Source:      c.Name(),
		})
	}
	return jobs, nil
}

// datePostedFilter maps a posting-hours window onto JSearch's date_posted
// buckets.
func datePostedFilter(postingHours int) string {
	switch {
	case postingHours <= 24:
		return "today"
	case postingHours <= 72:
		return "3days"
	case postingHours <= 168:
		return "week"
	default:
		return "month"
	}
}
