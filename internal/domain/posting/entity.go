// Package posting holds the canonical job posting shape that every external
// job board source is normalized into, plus the match scoring rules applied
// against resume keywords.
package posting

import (
	"time"

	"github.com/google/uuid"
)

// Source tags which external board a posting was normalized from.
type Source string

const (
	SourceAdzuna       Source = "adzuna"
	SourceReed         Source = "reed"
	SourceZipRecruiter Source = "ziprecruiter"
	SourceManual       Source = "manual"
)

func (s Source) Valid() bool {
	switch s {
	case SourceAdzuna, SourceReed, SourceZipRecruiter, SourceManual:
		return true
	}
	return false
}

// ExperienceLevel is the coarse seniority bucket shared by postings, resumes
// and subscription preferences.
type ExperienceLevel string

const (
	LevelJunior   ExperienceLevel = "junior"
	LevelMid      ExperienceLevel = "mid-level"
	LevelSenior   ExperienceLevel = "senior"
	LevelLead     ExperienceLevel = "lead"
	LevelManager  ExperienceLevel = "manager"
	LevelDirector ExperienceLevel = "director"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior, LevelLead, LevelManager, LevelDirector:
		return true
	}
	return false
}

// Salary is the optional compensation block carried by a posting. A nil Min
// and Max means the source did not report compensation.
type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Period   string   `json:"period,omitempty"` // yearly, monthly
}

type Category struct {
	Label string `json:"label,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// JobPosting is one deduplicated external listing. ExternalID is
// source-qualified and is the sole dedup key: storing a posting with an
// existing ExternalID overwrites the mutable fields, never creates a second
// record.
type JobPosting struct {
	ID              uuid.UUID       `json:"id"`
	ExternalID      string          `json:"externalId"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Country         string          `json:"country,omitempty"`
	Description     string          `json:"description"`
	Salary          Salary          `json:"salary"`
	Category        Category        `json:"category"`
	ContractType    string          `json:"contractType,omitempty"`
	RedirectURL     string          `json:"redirectUrl,omitempty"`
	PostedDate      time.Time       `json:"postedDate"`
	Source          Source          `json:"source"`
	IsActive        bool            `json:"isActive"`
	Keywords        []string        `json:"keywords,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
}
