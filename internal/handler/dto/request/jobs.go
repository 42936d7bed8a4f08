package request

import (
	"jobradar/internal/domain/posting"
	"jobradar/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchJobsRequest struct {
	ResumeKeywords  []string   `json:"resumeKeywords" binding:"required,min=1"`
	Location        string     `json:"location"`
	ExperienceLevel string     `json:"experienceLevel"`
	MaxResults      int        `json:"maxResults" binding:"omitempty,min=1,max=100"`
	UserID          *uuid.UUID `json:"userId"`
}

func (r *MatchJobsRequest) ToParams() queries.MatchParams {
	return queries.MatchParams{
		ResumeKeywords:  r.ResumeKeywords,
		Location:        r.Location,
		ExperienceLevel: posting.ExperienceLevel(r.ExperienceLevel),
		MaxResults:      r.MaxResults,
		UserID:          r.UserID,
	}
}

type SaveJobRequest struct {
	Notes      string   `json:"notes" binding:"max=2000"`
	Priority   string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags       []string `json:"tags"`
	MatchScore *int     `json:"matchScore" binding:"omitempty,min=0,max=100"`
}

type ApplyJobRequest struct {
	ResumeID    uuid.UUID `json:"resumeId" binding:"required"`
	CoverLetter string    `json:"coverLetter" binding:"max=5000"`
	Notes       string    `json:"notes" binding:"max=2000"`
}

type ManualFetchRequest struct {
	Keywords []string `json:"keywords" binding:"required,min=1"`
	Location string   `json:"location"`
}
