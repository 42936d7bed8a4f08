package commands

import (
	"context"
	"time"

	domapp "jobradar/internal/domain/application"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

type JobCommands interface {
	SaveJob(ctx context.Context, req SaveJobRequest) (uuid.UUID, error)
	UpdateSavedJob(ctx context.Context, savedJobID, actorID uuid.UUID, req UpdateSavedJobRequest) error
	RemoveSavedJob(ctx context.Context, savedJobID, actorID uuid.UUID) error
	Apply(ctx context.Context, req ApplyRequest) (uuid.UUID, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, actorID uuid.UUID, status domapp.Status, notes *string) error
	AddInterview(ctx context.Context, applicationID, actorID uuid.UUID, req InterviewRequest) (uuid.UUID, error)
	UpdateInterviewOutcome(ctx context.Context, applicationID, interviewID, actorID uuid.UUID, outcome, notes string) error
}

type SaveJobRequest struct {
	UserID     uuid.UUID
	JobID      uuid.UUID
	Notes      string
	Priority   domapp.Priority
	Tags       []string
	MatchScore *int
}

type UpdateSavedJobRequest struct {
	Notes    *string
	Priority domapp.Priority
	Tags     []string
}

type ApplyRequest struct {
	UserID      uuid.UUID
	JobID       uuid.UUID
	ResumeID    uuid.UUID
	CoverLetter string
	Notes       string
}

type InterviewRequest struct {
	Round       int
	Date        string
	Type        string
	Interviewer string
	Notes       string
}

type jobCommandsImpl struct {
	postings     PostingStore
	resumes      ResumeStore
	saved        SavedJobStore
	applications ApplicationStore
	clock        clock.Clock
}

func NewJobCommands(postings PostingStore, resumes ResumeStore, saved SavedJobStore, applications ApplicationStore, clk clock.Clock) JobCommands {
	return &jobCommandsImpl{
		postings:     postings,
		resumes:      resumes,
		saved:        saved,
		applications: applications,
		clock:        clk,
	}
}

func (uc *jobCommandsImpl) SaveJob(ctx context.Context, req SaveJobRequest) (uuid.UUID, error) {
	if req.Priority != "" && !req.Priority.Valid() {
		return uuid.Nil, errs.ErrDomainValidation
	}
	if _, err := uc.postings.FindByID(ctx, req.JobID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrPostingNotFound
		}
		return uuid.Nil, err
	}

	id, err := uc.saved.Create(ctx, &domapp.SavedJob{
		UserID:     req.UserID,
		JobID:      req.JobID,
		Notes:      req.Notes,
		Priority:   req.Priority,
		Tags:       req.Tags,
		MatchScore: req.MatchScore,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrJobAlreadySaved
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *jobCommandsImpl) UpdateSavedJob(ctx context.Context, savedJobID, actorID uuid.UUID, req UpdateSavedJobRequest) error {
	if req.Priority != "" && !req.Priority.Valid() {
		return errs.ErrDomainValidation
	}
	if err := uc.ownSavedJob(ctx, savedJobID, actorID); err != nil {
		return err
	}
	if err := uc.saved.Update(ctx, savedJobID, req.Notes, req.Priority, req.Tags); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSavedJobNotFound
		}
		return err
	}
	return nil
}

func (uc *jobCommandsImpl) RemoveSavedJob(ctx context.Context, savedJobID, actorID uuid.UUID) error {
	if err := uc.ownSavedJob(ctx, savedJobID, actorID); err != nil {
		return err
	}
	if err := uc.saved.Delete(ctx, savedJobID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSavedJobNotFound
		}
		return err
	}
	return nil
}

// Apply records an application and, when the user had saved the same job,
// links the saved entry to it.
func (uc *jobCommandsImpl) Apply(ctx context.Context, req ApplyRequest) (uuid.UUID, error) {
	if _, err := uc.postings.FindByID(ctx, req.JobID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrPostingNotFound
		}
		return uuid.Nil, err
	}
	rec, err := uc.resumes.FindByID(ctx, req.ResumeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrResumeNotFound
		}
		return uuid.Nil, err
	}
	if rec.UserID != req.UserID {
		return uuid.Nil, errs.ErrResumeNotFound
	}

	id, err := uc.applications.Create(ctx, &domapp.Application{
		UserID:      req.UserID,
		JobID:       req.JobID,
		ResumeID:    req.ResumeID,
		Status:      domapp.StatusApplied,
		CoverLetter: req.CoverLetter,
		Notes:       req.Notes,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrAlreadyApplied
		}
		return uuid.Nil, err
	}

	if err := uc.saved.MarkApplied(ctx, req.UserID, req.JobID, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *jobCommandsImpl) UpdateApplicationStatus(ctx context.Context, applicationID, actorID uuid.UUID, status domapp.Status, notes *string) error {
	if !status.Valid() {
		return errs.ErrInvalidStatus
	}
	if _, err := uc.ownApplication(ctx, applicationID, actorID); err != nil {
		return err
	}
	if err := uc.applications.UpdateStatus(ctx, applicationID, status, notes); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrApplicationNotFound
		}
		return err
	}
	return nil
}

// AddInterview appends one interview round. Scheduling the first interview
// moves an applied or reviewing application to interviewing.
func (uc *jobCommandsImpl) AddInterview(ctx context.Context, applicationID, actorID uuid.UUID, req InterviewRequest) (uuid.UUID, error) {
	app, err := uc.ownApplication(ctx, applicationID, actorID)
	if err != nil {
		return uuid.Nil, err
	}

	date, err := parseInterviewDate(req.Date, uc.clock)
	if err != nil {
		return uuid.Nil, errs.ErrDomainValidation
	}
	round := req.Round
	if round <= 0 {
		round = len(app.Interviews) + 1
	}
	iv := domapp.Interview{
		ID:          uuid.New(),
		Round:       round,
		Date:        date,
		Type:        req.Type,
		Interviewer: req.Interviewer,
		Notes:       req.Notes,
	}
	interviews := append(app.Interviews, iv)
	if err := uc.applications.ReplaceInterviews(ctx, applicationID, interviews); err != nil {
		return uuid.Nil, err
	}

	if app.Status == domapp.StatusApplied || app.Status == domapp.StatusReviewing {
		if err := uc.applications.UpdateStatus(ctx, applicationID, domapp.StatusInterviewing, nil); err != nil {
			return uuid.Nil, err
		}
	}
	return iv.ID, nil
}

func (uc *jobCommandsImpl) UpdateInterviewOutcome(ctx context.Context, applicationID, interviewID, actorID uuid.UUID, outcome, notes string) error {
	app, err := uc.ownApplication(ctx, applicationID, actorID)
	if err != nil {
		return err
	}
	found := false
	for i := range app.Interviews {
		if app.Interviews[i].ID == interviewID {
			app.Interviews[i].Outcome = outcome
			if notes != "" {
				app.Interviews[i].Notes = notes
			}
			found = true
			break
		}
	}
	if !found {
		return errs.ErrInterviewNotFound
	}
	return uc.applications.ReplaceInterviews(ctx, applicationID, app.Interviews)
}

func (uc *jobCommandsImpl) ownSavedJob(ctx context.Context, savedJobID, actorID uuid.UUID) error {
	// Ownership is checked against the job relation, not trusted from input.
	sj, err := uc.findSavedJob(ctx, savedJobID)
	if err != nil {
		return err
	}
	if sj.UserID != actorID {
		return errs.ErrSavedJobNotFound
	}
	return nil
}

func (uc *jobCommandsImpl) findSavedJob(ctx context.Context, savedJobID uuid.UUID) (*domapp.SavedJob, error) {
	sj, err := uc.saved.FindByID(ctx, savedJobID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSavedJobNotFound
		}
		return nil, err
	}
	return sj, nil
}

func parseInterviewDate(s string, clk clock.Clock) (time.Time, error) {
	if s == "" {
		return clk.Now(), nil
	}
	return time.Parse(time.RFC3339, s)
}

func (uc *jobCommandsImpl) ownApplication(ctx context.Context, applicationID, actorID uuid.UUID) (*domapp.Application, error) {
	app, err := uc.applications.FindByID(ctx, applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrApplicationNotFound
		}
		return nil, err
	}
	if app.UserID != actorID {
		return nil, errs.ErrApplicationNotFound
	}
	return app, nil
}
