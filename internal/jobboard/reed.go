package jobboard

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobradar/internal/domain/posting"
	"jobradar/internal/pkg/config"
	"jobradar/internal/pkg/errs"
)

const defaultReedBaseURL = "https://www.reed.co.uk/api/1.0/search"

// ReedAdapter fetches Reed.co.uk listings. Reed authenticates with HTTP
// Basic auth, key as username and empty password.
type ReedAdapter struct {
	apiKey         string
	resultsPerPage int
	baseURL        string
	client         *http.Client
}

func NewReedAdapter(cfg config.BoardsConfig, client *http.Client) *ReedAdapter {
	return &ReedAdapter{
		apiKey:         cfg.ReedAPIKey,
		resultsPerPage: cfg.ResultsPerPage,
		baseURL:        defaultReedBaseURL,
		client:         client,
	}
}

func (a *ReedAdapter) Source() posting.Source {
	return posting.SourceReed
}

type reedResponse struct {
	Results      []reedResult `json:"results"`
	TotalResults int          `json:"totalResults"`
}

type reedResult struct {
	JobID          int64    `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	EmployerName   string   `json:"employerName"`
	LocationName   string   `json:"locationName"`
	JobDescription string   `json:"jobDescription"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	CategoryName   string   `json:"categoryName"`
	EmploymentType string   `json:"employmentType"`
	JobURL         string   `json:"jobUrl"`
	DatePosted     string   `json:"date"`
}

func (a *ReedAdapter) Fetch(ctx context.Context, q Query) (Page, error) {
	if a.apiKey == "" {
		slog.Info("reed api key not configured, skipping fetch")
		return Page{}, nil
	}

	params := url.Values{}
	params.Set("keywords", q.Keywords)
	params.Set("locationName", q.Location)
	params.Set("distanceFromLocation", "10")
	params.Set("resultsToTake", strconv.Itoa(a.resultsPerPage))
	params.Set("resultsToSkip", strconv.Itoa((q.Page-1)*a.resultsPerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Page{}, errs.Wrap(err, "reed: build request")
	}
	auth := base64.StdEncoding.EncodeToString([]byte(a.apiKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return Page{}, errs.Wrap(err, "reed: fetch")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, errs.Wrap(err, "reed: read body")
	}
	if resp.StatusCode != http.StatusOK {
		return Page{}, errs.New(fmt.Sprintf("reed: status %d: %s", resp.StatusCode, body))
	}

	var apiResp reedResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Page{}, errs.Wrap(err, "reed: decode response")
	}

	postings := make([]posting.JobPosting, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		postings = append(postings, normalizeReed(r, q.Keywords))
	}
	return Page{Postings: postings, TotalCount: apiResp.TotalResults}, nil
}

// normalizeReed maps one Reed listing into the canonical shape. Reed is a UK
// board: currency GBP, salaries yearly.
func normalizeReed(r reedResult, keywords string) posting.JobPosting {
	postedDate := time.Now()
	// Reed dates come as dd/mm/yyyy.
	if t, err := time.Parse("02/01/2006", r.DatePosted); err == nil {
		postedDate = t
	}

	return posting.JobPosting{
		ExternalID:  fmt.Sprintf("reed_%d", r.JobID),
		Title:       r.JobTitle,
		Company:     r.EmployerName,
		Location:    r.LocationName,
		Country:     "UK",
		Description: r.JobDescription,
		Salary: posting.Salary{
			Min:      r.MinimumSalary,
			Max:      r.MaximumSalary,
			Currency: "GBP",
			Period:   "yearly",
		},
		Category: posting.Category{
			Label: r.CategoryName,
			Tag:   r.CategoryName,
		},
		ContractType: r.EmploymentType,
		RedirectURL:  r.JobURL,
		PostedDate:   postedDate,
		Source:       posting.SourceReed,
		IsActive:     true,
		Keywords:     queryKeywordList(keywords),
	}
}
