// Package application models the user↔job relationship records: submitted
// applications with their interview workflow, and saved jobs.
package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied      Status = "applied"
	StatusReviewing    Status = "reviewing"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusRejected     Status = "rejected"
	StatusWithdrawn    Status = "withdrawn"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusInterviewing,
		StatusOffered, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Interview is one scheduled round attached to an application.
type Interview struct {
	ID          uuid.UUID `json:"id"`
	Round       int       `json:"round"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"` // phone, video, onsite
	Interviewer string    `json:"interviewer,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type Application struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	JobID       uuid.UUID   `json:"jobId"`
	ResumeID    uuid.UUID   `json:"resumeId"`
	Status      Status      `json:"status"`
	CoverLetter string      `json:"coverLetter,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Interviews  []Interview `json:"interviews"`
	AppliedAt   time.Time   `json:"appliedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type SavedJob struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	JobID         uuid.UUID  `json:"jobId"`
	SavedAt       time.Time  `json:"savedAt"`
	Notes         string     `json:"notes,omitempty"`
	Priority      Priority   `json:"priority"`
	Tags          []string   `json:"tags,omitempty"`
	MatchScore    *int       `json:"matchScore,omitempty"`
	IsApplied     bool       `json:"isApplied"`
	ApplicationID *uuid.UUID `json:"applicationId,omitempty"`
}
