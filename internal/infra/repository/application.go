package repository

import (
	"context"
	"encoding/json"
	"errors"

	domapp "jobradar/internal/domain/application"
	"jobradar/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `
	id, user_id, job_id, resume_id, status, cover_letter, notes,
	interviews, applied_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app *domapp.Application) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, resume_id, status, cover_letter, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		app.UserID, app.JobID, app.ResumeID, string(app.Status), app.CoverLetter, app.Notes,
	).Scan(&id)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("already applied to job", err, infra.KindDuplicateKey)
		case isForeignKeyViolation(err):
			return uuid.Nil, infra.WrapRepoErr("job or resume does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create application", err)
	}
	return id, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domapp.Application, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (*domapp.Application, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 AND job_id = $2`,
		userID, jobID)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByUser(ctx context.Context, userID uuid.UUID, status domapp.Status, limit, offset int) ([]domapp.Application, int, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1`
	countQuery := `SELECT count(*) FROM applications WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		countQuery += ` AND status = $2`
		args = append(args, string(status))
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count applications", err)
	}

	query += ` ORDER BY applied_at DESC LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list applications", err)
	}
	defer rows.Close()

	var result []domapp.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan application row", err)
		}
		result = append(result, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("application rows iteration failed", err)
	}
	return result, total, nil
}

// JobIDsByUser returns the set of job ids the user has applied to, used to
// annotate match results.
func (r *ApplicationRepository) JobIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT job_id FROM applications WHERE user_id = $1`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list applied job ids", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan applied job id", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domapp.Status, notes *string) error {
	query := `UPDATE applications SET status = $2, updated_at = now()`
	args := []any{id, string(status)}
	if notes != nil {
		args = append(args, *notes)
		query += `, notes = $` + itoa(len(args))
	}
	query += ` WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update application status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("application not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReplaceInterviews persists the full interview list of an application.
// Interviews are stored as a jsonb document, so updates rewrite the array.
func (r *ApplicationRepository) ReplaceInterviews(ctx context.Context, id uuid.UUID, interviews []domapp.Interview) error {
	if interviews == nil {
		interviews = []domapp.Interview{}
	}
	doc, err := json.Marshal(interviews)
	if err != nil {
		return infra.WrapRepoErr("failed to encode interviews", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE applications SET interviews = $2, updated_at = now() WHERE id = $1`,
		id, doc)
	if err != nil {
		return infra.WrapRepoErr("failed to update interviews", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("application not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanApplication(row pgx.Row) (*domapp.Application, error) {
	var (
		app        domapp.Application
		status     string
		interviews []byte
	)
	err := row.Scan(
		&app.ID, &app.UserID, &app.JobID, &app.ResumeID, &status,
		&app.CoverLetter, &app.Notes, &interviews, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	app.Status = domapp.Status(status)
	if err := json.Unmarshal(interviews, &app.Interviews); err != nil {
		return nil, err
	}
	return &app, nil
}
