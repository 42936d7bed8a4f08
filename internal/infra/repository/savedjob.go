package repository

import (
	"context"
	"errors"

	domapp "jobradar/internal/domain/application"
	"jobradar/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

const savedJobColumns = `
	id, user_id, job_id, saved_at, notes, priority, tags,
	match_score, is_applied, application_id`

func (r *SavedJobRepository) Create(ctx context.Context, sj *domapp.SavedJob) (uuid.UUID, error) {
	tags := sj.Tags
	if tags == nil {
		tags = []string{}
	}
	priority := sj.Priority
	if !priority.Valid() {
		priority = domapp.PriorityMedium
	}
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (user_id, job_id, notes, priority, tags, match_score)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		sj.UserID, sj.JobID, sj.Notes, string(priority), tags, sj.MatchScore,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("job already saved", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to save job", err)
	}
	return id, nil
}

func (r *SavedJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domapp.SavedJob, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+savedJobColumns+` FROM saved_jobs WHERE id = $1`, id)
	sj, err := scanSavedJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("saved job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get saved job", err)
	}
	return sj, nil
}

func (r *SavedJobRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*domapp.SavedJob, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+savedJobColumns+` FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID)
	sj, err := scanSavedJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("saved job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get saved job", err)
	}
	return sj, nil
}

func (r *SavedJobRepository) FindByUser(ctx context.Context, userID uuid.UUID, priority domapp.Priority, limit, offset int) ([]domapp.SavedJob, int, error) {
	query := `SELECT ` + savedJobColumns + ` FROM saved_jobs WHERE user_id = $1`
	countQuery := `SELECT count(*) FROM saved_jobs WHERE user_id = $1`
	args := []any{userID}
	if priority != "" {
		query += ` AND priority = $2`
		countQuery += ` AND priority = $2`
		args = append(args, string(priority))
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count saved jobs", err)
	}

	query += ` ORDER BY saved_at DESC LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list saved jobs", err)
	}
	defer rows.Close()

	var result []domapp.SavedJob
	for rows.Next() {
		sj, err := scanSavedJob(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan saved job row", err)
		}
		result = append(result, *sj)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("saved job rows iteration failed", err)
	}
	return result, total, nil
}

// JobIDsByUser returns the set of job ids the user has saved, used to
// annotate match results.
func (r *SavedJobRepository) JobIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT job_id FROM saved_jobs WHERE user_id = $1`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list saved job ids", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan saved job id", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *SavedJobRepository) Update(ctx context.Context, id uuid.UUID, notes *string, priority domapp.Priority, tags []string) error {
	query := `UPDATE saved_jobs SET id = id`
	args := []any{id}
	if notes != nil {
		args = append(args, *notes)
		query += `, notes = $` + itoa(len(args))
	}
	if priority != "" {
		args = append(args, string(priority))
		query += `, priority = $` + itoa(len(args))
	}
	if tags != nil {
		args = append(args, tags)
		query += `, tags = $` + itoa(len(args))
	}
	query += ` WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update saved job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("saved job not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkApplied links a saved job to the application created for it. No-op
// when the user never saved the job.
func (r *SavedJobRepository) MarkApplied(ctx context.Context, userID, jobID, applicationID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE saved_jobs SET is_applied = true, application_id = $3
		 WHERE user_id = $1 AND job_id = $2`,
		userID, jobID, applicationID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark saved job applied", err)
	}
	return nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete saved job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("saved job not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanSavedJob(row pgx.Row) (*domapp.SavedJob, error) {
	var (
		sj            domapp.SavedJob
		priority      string
		matchScore    pgtype.Int4
		applicationID pgtype.UUID
	)
	err := row.Scan(
		&sj.ID, &sj.UserID, &sj.JobID, &sj.SavedAt, &sj.Notes, &priority,
		&sj.Tags, &matchScore, &sj.IsApplied, &applicationID,
	)
	if err != nil {
		return nil, err
	}
	sj.Priority = domapp.Priority(priority)
	if matchScore.Valid {
		score := int(matchScore.Int32)
		sj.MatchScore = &score
	}
	if applicationID.Valid {
		id := uuid.UUID(applicationID.Bytes)
		sj.ApplicationID = &id
	}
	return &sj, nil
}
