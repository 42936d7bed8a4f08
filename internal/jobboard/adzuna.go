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

const defaultAdzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

// AdzunaAdapter fetches the Adzuna public API (UK market by default).
type AdzunaAdapter struct {
	appID          string
	appKey         string
	country        string
	resultsPerPage int
	baseURL        string
	client         *http.Client
}

func NewAdzunaAdapter(cfg config.BoardsConfig, client *http.Client) *AdzunaAdapter {
	return &AdzunaAdapter{
		appID:          cfg.AdzunaAppID,
		appKey:         cfg.AdzunaAppKey,
		country:        cfg.AdzunaCountry,
		resultsPerPage: cfg.ResultsPerPage,
		baseURL:        defaultAdzunaBaseURL,
		client:         client,
	}
}

func (a *AdzunaAdapter) Source() posting.Source {
	return posting.SourceAdzuna
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

type adzunaResult struct {
	ID             json.Number     `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Company        adzunaCompany   `json:"company"`
	Location       adzunaLocation  `json:"location"`
	Category       adzunaCategory  `json:"category"`
	SalaryMin      *float64        `json:"salary_min"`
	SalaryMax      *float64        `json:"salary_max"`
	SalaryCurrency string          `json:"salary_currency"`
	SalaryIsYearly bool            `json:"salary_is_per_year"`
	ContractType   string          `json:"contract_type"`
	RedirectURL    string          `json:"redirect_url"`
	Created        string          `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string   `json:"display_name"`
	Area        []string `json:"area"`
}

type adzunaCategory struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

func (a *AdzunaAdapter) Fetch(ctx context.Context, q Query) (Page, error) {
	if a.appID == "" || a.appKey == "" {
		slog.Info("adzuna credentials not configured, skipping fetch")
		return Page{}, nil
	}

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(a.resultsPerPage))
	params.Set("what", q.Keywords)
	params.Set("where", q.Location)

	endpoint := fmt.Sprintf("%s/%s/search/%d?%s", a.baseURL, a.country, q.Page, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, errs.Wrap(err, "adzuna: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return Page{}, errs.Wrap(err, "adzuna: fetch")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, errs.Wrap(err, "adzuna: read body")
	}
	if resp.StatusCode != http.StatusOK {
		return Page{}, errs.New(fmt.Sprintf("adzuna: status %d: %s", resp.StatusCode, body))
	}

	var apiResp adzunaResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Page{}, errs.Wrap(err, "adzuna: decode response")
	}

	postings := make([]posting.JobPosting, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		postings = append(postings, normalizeAdzuna(r, q.Keywords))
	}
	return Page{Postings: postings, TotalCount: apiResp.Count}, nil
}

// normalizeAdzuna maps one Adzuna listing into the canonical shape. Currency
// defaults to GBP; period follows the salary_is_per_year flag.
func normalizeAdzuna(r adzunaResult, keywords string) posting.JobPosting {
	currency := r.SalaryCurrency
	if currency == "" {
		currency = "GBP"
	}
	period := "monthly"
	if r.SalaryIsYearly {
		period = "yearly"
	}

	country := ""
	if len(r.Location.Area) > 0 {
		country = r.Location.Area[0]
	}

	postedDate := time.Now()
	if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
		postedDate = t
	}

	return posting.JobPosting{
		ExternalID:  r.ID.String(),
		Title:       r.Title,
		Company:     r.Company.DisplayName,
		Location:    r.Location.DisplayName,
		Country:     country,
		Description: r.Description,
		Salary: posting.Salary{
			Min:      r.SalaryMin,
			Max:      r.SalaryMax,
			Currency: currency,
			Period:   period,
		},
		Category: posting.Category{
			Label: r.Category.Label,
			Tag:   r.Category.Tag,
		},
		ContractType: r.ContractType,
		RedirectURL:  r.RedirectURL,
		PostedDate:   postedDate,
		Source:       posting.SourceAdzuna,
		IsActive:     true,
		Keywords:     queryKeywordList(keywords),
	}
}
