package repository

import (
	"context"
	"errors"

	"jobradar/internal/domain/posting"
	domresume "jobradar/internal/domain/resume"
	"jobradar/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

const resumeColumns = `
	id, user_id, filename, original_name, file_size, upload_date,
	extracted_text, keywords, education, experience_level, text_length, is_active`

func (r *ResumeRepository) Create(ctx context.Context, rec *domresume.Record) (uuid.UUID, error) {
	keywords := rec.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO resumes (
			user_id, filename, original_name, file_size, upload_date,
			extracted_text, keywords, education, experience_level, text_length, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
		RETURNING id`,
		rec.UserID, rec.Filename, rec.OriginalName, rec.FileSize, rec.UploadDate,
		rec.ExtractedText, keywords, rec.Education, string(rec.ExperienceLevel), rec.TextLength,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create resume", err)
	}
	return id, nil
}

func (r *ResumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domresume.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resume not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resume by id", err)
	}
	return rec, nil
}

// FindByUser returns the user's active resumes, newest upload first.
func (r *ResumeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domresume.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE user_id = $1 AND is_active = true
		 ORDER BY upload_date DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resumes by user", err)
	}
	defer rows.Close()

	var result []domresume.Record
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resume row", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("resume rows iteration failed", err)
	}
	return result, nil
}

// FindLatestActive returns the user's most recent active resume, or
// KindNotFound when none exists.
func (r *ResumeRepository) FindLatestActive(ctx context.Context, userID uuid.UUID) (*domresume.Record, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE user_id = $1 AND is_active = true
		 ORDER BY upload_date DESC
		 LIMIT 1`, userID)
	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active resume", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get latest resume", err)
	}
	return rec, nil
}

// Deactivate soft-deletes a resume; the parsed record is retained.
func (r *ResumeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE resumes SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate resume", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resume not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanResume(row pgx.Row) (*domresume.Record, error) {
	var (
		rec   domresume.Record
		level string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Filename, &rec.OriginalName, &rec.FileSize,
		&rec.UploadDate, &rec.ExtractedText, &rec.Keywords, &rec.Education,
		&level, &rec.TextLength, &rec.IsActive,
	)
	if err != nil {
		return nil, err
	}
	rec.ExperienceLevel = posting.ExperienceLevel(level)
	return &rec, nil
}
