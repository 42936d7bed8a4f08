package response

import (
	"jobradar/internal/domain/posting"
	"jobradar/internal/usecase/queries"
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, TotalCount: total, TotalPages: pages}
}

type JobListResponse struct {
	Jobs       []posting.JobPosting `json:"jobs"`
	Pagination Pagination           `json:"pagination"`
}

func FromSearchResult(r *queries.SearchResult) JobListResponse {
	jobs := r.Postings
	if jobs == nil {
		jobs = []posting.JobPosting{}
	}
	return JobListResponse{
		Jobs:       jobs,
		Pagination: NewPagination(r.Page, r.Limit, r.TotalCount),
	}
}

type MatchListResponse struct {
	Matches []queries.MatchedPosting `json:"matches"`
	Count   int                      `json:"count"`
}

func FromMatches(matches []queries.MatchedPosting) MatchListResponse {
	if matches == nil {
		matches = []queries.MatchedPosting{}
	}
	return MatchListResponse{Matches: matches, Count: len(matches)}
}
