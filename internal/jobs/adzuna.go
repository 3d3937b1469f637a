package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

// adzunaMaxPerPage is the API's results_per_page ceiling.
const adzunaMaxPerPage = 50

// AdzunaClient queries the Adzuna job search API.
type AdzunaClient struct {
	appID   string
	appKey  string
	baseURL string
	http    *http.Client
}

// NewAdzunaClient creates a client with the given credentials.
func NewAdzunaClient(appID, appKey string) *AdzunaClient {
	return &AdzunaClient{
		appID:   appID,
		appKey:  appKey,
		baseURL: adzunaBaseURL,
		http:    newHTTPClient(),
	}
}

// Name identifies the provider.
func (c *AdzunaClient) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		Description string  `json:"description"`
		RedirectURL string  `json:"redirect_url"`
		SalaryMin   float64 `json:"salary_min"`
		SalaryMax   float64 `json:"salary_max"`
		Created     string  `json:"created"`
	} `json:"results"`
}

// Search queries Adzuna's country-scoped search endpoint.
func (c *AdzunaClient) Search(ctx context.Context, q SearchQuery) ([]types.JobPosting, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, fmt.Errorf("adzuna credentials not configured")
	}
	q = q.withDefaults()

	perPage := q.MaxResults
	if perPage > adzunaMaxPerPage {
		perPage = adzunaMaxPerPage
	}

	params := url.Values{
		"app_id":           {c.appID},
		"app_key":          {c.appKey},
		"results_per_page": {strconv.Itoa(perPage)},
		"what":             {q.JobTitle},
		"max_days_old":     {strconv.Itoa(daysOld(q.PostingHours))},
		"content-type":     {"application/json"},
	}
	if q.Location != "" {
		params.Set("where", q.Location)
	}
	switch q.EmploymentType {
	case "FULLTIME":
		params.Set("full_time", "1")
	case "PARTTIME":
		params.Set("part_time", "1")
	case "CONTRACTOR":
		params.Set("contract", "1")
	}

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, q.Country, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build adzuna request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna returned status %d", resp.StatusCode)
	}

	var data adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode adzuna response: %w", err)
	}

	jobs := make([]types.JobPosting, 0, len(data.Results))
	for _, r := range data.Results {
		company := r.Company.DisplayName
		if company == "" {
			company = "Unknown"
		}
		jobs = append(jobs, types.JobPosting{
			Title:       r.Title,
			Company:     company,
			Location:    r.Location.DisplayName,
			Description: stripHTML(r.Description),
			URL:         r.RedirectURL,
			Salary:      formatSalary(r.SalaryMin, r.SalaryMax),
			PostedDate:  r.Created,
			Source:      c.Name(),
		})
	}
	return jobs, nil
}
