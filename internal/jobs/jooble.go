package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

const joobleBaseURL = "https://jooble.org/api"

// JoobleClient queries the Jooble job search API. The API key is part of
// the endpoint path rather than a header.
type JoobleClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewJoobleClient creates a client with the given API key.
func NewJoobleClient(apiKey string) *JoobleClient {
	return &JoobleClient{
		apiKey:  apiKey,
		baseURL: joobleBaseURL,
		http:    newHTTPClient(),
	}
}

// Name identifies the provider.
func (c *JoobleClient) Name() string { return "jooble" }

type joobleRequest struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	Radius     string `json:"radius"`
	Page       int    `json:"page"`
	SearchMode string `json:"searchMode"`
}

type joobleResponse struct {
	Jobs []struct {
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
		Snippet  string `json:"snippet"`
		Link     string `json:"link"`
		Salary   string `json:"salary"`
		Updated  string `json:"updated"`
	} `json:"jobs"`
}

// Search posts a keyword query to Jooble's keyed endpoint.
func (c *JoobleClient) Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("jooble API key not configured")
	}
	q = q.withDefaults()

	location := q.Location
	if location == "" {
		location = countryName(q.Country)
	}

	payload, err := json.Marshal(joobleRequest{
		Keywords:   q.JobTitle,
		Location:   location,
		Radius:     "25",
		Page:       1,
		SearchMode: strconv.Itoa(daysOld(q.PostingHours)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode jooble request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build jooble request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jooble request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jooble returned status %d", resp.StatusCode)
	}

	var data joobleResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode jooble response: %w", err)
	}

	results := data.Jobs
	if len(results) > q.MaxResults {
		results = results[:q.MaxResults]
	}

	jobs := make([]types.JobPosting, 0, len(results))
	for _, r := range results {
		company := r.Company
		if company == "" {
			company = "Unknown"
		}
		jobLocation := r.Location
		if jobLocation == "" {
			jobLocation = location
		}
		jobs = append(jobs, types.JobPosting{
			Title:       r.Title,
			Company:     company,
			Location:    jobLocation,
			Description: stripHTML(r.Snippet),
			URL:         r.Link,
			Salary:      r.Salary,
			PostedDate:  r.Updated,
			Source:      c.Name(),
		})
	}
	return jobs, nil
}
