package commands

import (
	"context"
	"log/slog"
	"strings"

	domresume "jobradar/internal/domain/resume"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResumeCommands interface {
	Upload(ctx context.Context, req UploadResumeRequest) (*ResumeUploadResult, error)
	Delete(ctx context.Context, resumeID, actorID uuid.UUID) error
}

type UploadResumeRequest struct {
	UserID       uuid.UUID
	OriginalName string
	Data         []byte
}

type resumeCommandsImpl struct {
	resumes   ResumeStore
	extractor TextExtractor
	files     FileStore
	clock     clock.Clock
	logger    *slog.Logger
}

func NewResumeCommands(resumes ResumeStore, extractor TextExtractor, files FileStore, clk clock.Clock, logger *slog.Logger) ResumeCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &resumeCommandsImpl{resumes: resumes, extractor: extractor, files: files, clock: clk, logger: logger}
}

// Upload parses the PDF, derives keywords once, stores the file and the
// record. The derivation fields are never recomputed afterwards.
func (uc *resumeCommandsImpl) Upload(ctx context.Context, req UploadResumeRequest) (*ResumeUploadResult, error) {
	text, err := uc.extractor.ExtractText(req.Data)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse resume")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.ErrEmptyResume
	}

	ext := domresume.Extract(text)
	filename := uuid.New().String() + ".pdf"
	if err := uc.files.Save(filename, req.Data); err != nil {
		return nil, err
	}

	rec := &domresume.Record{
		UserID:          req.UserID,
		Filename:        filename,
		OriginalName:    req.OriginalName,
		FileSize:        int64(len(req.Data)),
		UploadDate:      uc.clock.Now(),
		ExtractedText:   text,
		Keywords:        ext.Skills,
		Education:       ext.Education,
		ExperienceLevel: ext.ExperienceLevel,
		TextLength:      ext.TextLength,
		IsActive:        true,
	}
	id, err := uc.resumes.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("resume uploaded",
		"resume_id", id,
		"user_id", req.UserID,
		"keywords", len(rec.Keywords),
		"text_length", rec.TextLength)

	return &ResumeUploadResult{
		ID:              id,
		Filename:        rec.Filename,
		OriginalName:    rec.OriginalName,
		FileSize:        rec.FileSize,
		UploadDate:      rec.UploadDate,
		Keywords:        rec.Keywords,
		Education:       rec.Education,
		ExperienceLevel: rec.ExperienceLevel,
		TextLength:      rec.TextLength,
	}, nil
}

// Delete soft-deletes the record and removes the stored file. The record is
// kept for history, only the active flag flips.
func (uc *resumeCommandsImpl) Delete(ctx context.Context, resumeID, actorID uuid.UUID) error {
	rec, err := uc.resumes.FindByID(ctx, resumeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrResumeNotFound
		}
		return err
	}
	if rec.UserID != actorID {
		return errs.ErrResumeNotFound
	}
	if err := uc.resumes.Deactivate(ctx, resumeID); err != nil {
		return err
	}
	if err := uc.files.Remove(rec.Filename); err != nil {
		uc.logger.Warn("failed to remove resume file", "filename", rec.Filename, "error", err)
	}
	return nil
}
