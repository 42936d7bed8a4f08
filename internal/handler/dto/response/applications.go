package response

import (
	domapp "jobradar/internal/domain/application"
	"jobradar/internal/usecase/queries"
)

type ApplicationListResponse struct {
	Applications []domapp.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}

func FromPagedApplications(p *queries.PagedApplications) ApplicationListResponse {
	apps := p.Applications
	if apps == nil {
		apps = []domapp.Application{}
	}
	return ApplicationListResponse{
		Applications: apps,
		Pagination:   NewPagination(p.Page, p.Limit, p.TotalCount),
	}
}

type SavedJobListResponse struct {
	SavedJobs  []domapp.SavedJob `json:"savedJobs"`
	Pagination Pagination        `json:"pagination"`
}

func FromPagedSavedJobs(p *queries.PagedSavedJobs) SavedJobListResponse {
	saved := p.SavedJobs
	if saved == nil {
		saved = []domapp.SavedJob{}
	}
	return SavedJobListResponse{
		SavedJobs:  saved,
		Pagination: NewPagination(p.Page, p.Limit, p.TotalCount),
	}
}
