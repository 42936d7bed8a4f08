package jobboard

import (
	"context"
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

const defaultZipBaseURL = "https://api.ziprecruiter.com/jobs/v1"

// ZipRecruiterAdapter fetches the ZipRecruiter API (US market).
type ZipRecruiterAdapter struct {
	apiKey         string
	resultsPerPage int
	baseURL        string
	client         *http.Client
}

func NewZipRecruiterAdapter(cfg config.BoardsConfig, client *http.Client) *ZipRecruiterAdapter {
	return &ZipRecruiterAdapter{
		apiKey:         cfg.ZipRecruiterKey,
		resultsPerPage: cfg.ResultsPerPage,
		baseURL:        defaultZipBaseURL,
		client:         client,
	}
}

func (a *ZipRecruiterAdapter) Source() posting.Source {
	return posting.SourceZipRecruiter
}

type zipResponse struct {
	Jobs      []zipResult `json:"jobs"`
	TotalJobs int         `json:"total_jobs"`
}

type zipResult struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Snippet         string        `json:"snippet"`
	HiringCompany   zipCompany    `json:"hiring_company"`
	Location        string        `json:"location"`
	Category        string        `json:"category"`
	SalaryMinAnnual *float64      `json:"salary_min_annual"`
	SalaryMaxAnnual *float64      `json:"salary_max_annual"`
	EmploymentType  string        `json:"employment_type"`
	URL             string        `json:"url"`
	PostedTime      string        `json:"posted_time"`
}

type zipCompany struct {
	Name string `json:"name"`
}

func (a *ZipRecruiterAdapter) Fetch(ctx context.Context, q Query) (Page, error) {
	if a.apiKey == "" {
		slog.Info("ziprecruiter api key not configured, skipping fetch")
		return Page{}, nil
	}

	params := url.Values{}
	params.Set("api_key", a.apiKey)
	params.Set("search", q.Keywords)
	params.Set("location", q.Location)
	params.Set("radius_miles", "25")
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("jobs_per_page", strconv.Itoa(a.resultsPerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Page{}, errs.Wrap(err, "ziprecruiter: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return Page{}, errs.Wrap(err, "ziprecruiter: fetch")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, errs.Wrap(err, "ziprecruiter: read body")
	}
	if resp.StatusCode != http.StatusOK {
		return Page{}, errs.New(fmt.Sprintf("ziprecruiter: status %d: %s", resp.StatusCode, body))
	}

	var apiResp zipResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Page{}, errs.Wrap(err, "ziprecruiter: decode response")
	}

	postings := make([]posting.JobPosting, 0, len(apiResp.Jobs))
	for _, r := range apiResp.Jobs {
		postings = append(postings, normalizeZipRecruiter(r, q.Keywords))
	}
	return Page{Postings: postings, TotalCount: apiResp.TotalJobs}, nil
}

// normalizeZipRecruiter maps one ZipRecruiter listing into the canonical
// shape. US board: currency USD, salaries annual.
func normalizeZipRecruiter(r zipResult, keywords string) posting.JobPosting {
	postedDate := time.Now()
	if t, err := time.Parse(time.RFC3339, r.PostedTime); err == nil {
		postedDate = t
	}

	return posting.JobPosting{
		ExternalID:  "zip_" + r.ID,
		Title:       r.Name,
		Company:     r.HiringCompany.Name,
		Location:    r.Location,
		Country:     "US",
		Description: r.Snippet,
		Salary: posting.Salary{
			Min:      r.SalaryMinAnnual,
			Max:      r.SalaryMaxAnnual,
			Currency: "USD",
			Period:   "yearly",
		},
		Category: posting.Category{
			Label: r.Category,
			Tag:   r.Category,
		},
		ContractType: r.EmploymentType,
		RedirectURL:  r.URL,
		PostedDate:   postedDate,
		Source:       posting.SourceZipRecruiter,
		IsActive:     true,
		Keywords:     queryKeywordList(keywords),
	}
}
