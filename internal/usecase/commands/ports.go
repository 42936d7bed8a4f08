package commands

import (
	"context"
	"time"

	domapp "jobradar/internal/domain/application"
	domresume "jobradar/internal/domain/resume"
	domsub "jobradar/internal/domain/subscription"
	"jobradar/internal/domain/posting"

	"github.com/google/uuid"
)

// Write-side store ports. Implemented by internal/infra/repository; commands
// depend on these rather than the concrete pgx types.

type PostingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*posting.JobPosting, error)
}

type ResumeStore interface {
	Create(ctx context.Context, rec *domresume.Record) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domresume.Record, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type SavedJobStore interface {
	Create(ctx context.Context, sj *domapp.SavedJob) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domapp.SavedJob, error)
	Update(ctx context.Context, id uuid.UUID, notes *string, priority domapp.Priority, tags []string) error
	MarkApplied(ctx context.Context, userID, jobID, applicationID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationStore interface {
	Create(ctx context.Context, app *domapp.Application) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domapp.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domapp.Status, notes *string) error
	ReplaceInterviews(ctx context.Context, id uuid.UUID, interviews []domapp.Interview) error
}

type SubscriptionStore interface {
	Create(ctx context.Context, s *domsub.Subscription) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domsub.Subscription, error)
	FindActiveByUserEmailType(ctx context.Context, userID uuid.UUID, email string, typ domsub.DigestType) (*domsub.Subscription, error)
	FindByEmail(ctx context.Context, email, token string) (*domsub.Subscription, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs domsub.Preferences, frequency domsub.Frequency) error
}

// External collaborators.

type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type FileStore interface {
	Save(filename string, data []byte) error
	Remove(filename string) error
}

type WelcomeMailer interface {
	SendWelcome(email string, frequency domsub.Frequency) error
}

// ResumeUploadResult mirrors the payload the upload endpoint returns.
type ResumeUploadResult struct {
	ID              uuid.UUID
	Filename        string
	OriginalName    string
	FileSize        int64
	UploadDate      time.Time
	Keywords        []string
	Education       bool
	ExperienceLevel posting.ExperienceLevel
	TextLength      int
}
