package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"jobradar/internal/domain/posting"
	"jobradar/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostingRepository struct {
	pool *pgxpool.Pool
}

func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

const postingColumns = `
	id, external_id, title, company, location, country, description,
	salary_min, salary_max, salary_currency, salary_period,
	category_label, category_tag, contract_type, redirect_url,
	posted_date, source, is_active, keywords, experience_level`

const upsertPostingSQL = `
	INSERT INTO job_postings (
		external_id, title, company, location, country, description,
		salary_min, salary_max, salary_currency, salary_period,
		category_label, category_tag, contract_type, redirect_url,
		posted_date, source, is_active, keywords, experience_level
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (external_id) DO UPDATE SET
		title = EXCLUDED.title,
		company = EXCLUDED.company,
		location = EXCLUDED.location,
		country = EXCLUDED.country,
		description = EXCLUDED.description,
		salary_min = EXCLUDED.salary_min,
		salary_max = EXCLUDED.salary_max,
		salary_currency = EXCLUDED.salary_currency,
		salary_period = EXCLUDED.salary_period,
		category_label = EXCLUDED.category_label,
		category_tag = EXCLUDED.category_tag,
		contract_type = EXCLUDED.contract_type,
		redirect_url = EXCLUDED.redirect_url,
		posted_date = EXCLUDED.posted_date,
		source = EXCLUDED.source,
		is_active = EXCLUDED.is_active,
		keywords = EXCLUDED.keywords,
		experience_level = EXCLUDED.experience_level,
		updated_at = now()`

// UpsertBatch writes every posting in one pgx batch, keyed by external_id.
// A posting whose external_id already exists overwrites the mutable fields
// of the stored row; the row count never grows for a repeated id.
func (r *PostingRepository) UpsertBatch(ctx context.Context, postings []posting.JobPosting) (int, error) {
	if len(postings) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range postings {
		level := p.ExperienceLevel
		if !level.Valid() {
			level = posting.LevelMid
		}
		keywords := p.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		batch.Queue(upsertPostingSQL,
			p.ExternalID, p.Title, p.Company, p.Location, p.Country, p.Description,
			p.Salary.Min, p.Salary.Max, p.Salary.Currency, p.Salary.Period,
			p.Category.Label, p.Category.Tag, p.ContractType, p.RedirectURL,
			p.PostedDate, string(p.Source), p.IsActive, keywords, string(level),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range postings {
		if _, err := results.Exec(); err != nil {
			return 0, infra.WrapRepoErr("failed to upsert postings", err)
		}
	}
	return len(postings), nil
}

// SearchFilter narrows a stored-posting query. Zero values mean "no filter".
type SearchFilter struct {
	Keywords        string
	Location        string
	Source          posting.Source
	ExperienceLevel posting.ExperienceLevel
	Limit           int
	Offset          int
}

// Search returns active postings newest-first, filtered by case-insensitive
// substring match on title/description and location.
func (r *PostingRepository) Search(ctx context.Context, f SearchFilter) ([]posting.JobPosting, error) {
	query := `SELECT ` + postingColumns + ` FROM job_postings WHERE is_active = true`
	args := []any{}

	if f.Keywords != "" {
		args = append(args, "%"+f.Keywords+"%")
		query += ` AND (title ILIKE $1 OR description ILIKE $1)`
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		query += ` AND location ILIKE $` + itoa(len(args))
	}
	if f.Source != "" {
		args = append(args, string(f.Source))
		query += ` AND source = $` + itoa(len(args))
	}
	if f.ExperienceLevel != "" {
		args = append(args, string(f.ExperienceLevel))
		query += ` AND experience_level = $` + itoa(len(args))
	}

	query += ` ORDER BY posted_date DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search postings", err)
	}
	defer rows.Close()

	return scanPostings(rows)
}

// CountSearch counts the rows Search would return without its limit/offset.
func (r *PostingRepository) CountSearch(ctx context.Context, f SearchFilter) (int, error) {
	query := `SELECT count(*) FROM job_postings WHERE is_active = true`
	args := []any{}

	if f.Keywords != "" {
		args = append(args, "%"+f.Keywords+"%")
		query += ` AND (title ILIKE $1 OR description ILIKE $1)`
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		query += ` AND location ILIKE $` + itoa(len(args))
	}
	if f.Source != "" {
		args = append(args, string(f.Source))
		query += ` AND source = $` + itoa(len(args))
	}
	if f.ExperienceLevel != "" {
		args = append(args, string(f.ExperienceLevel))
		query += ` AND experience_level = $` + itoa(len(args))
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count postings", err)
	}
	return count, nil
}

func (r *PostingRepository) FindByID(ctx context.Context, id uuid.UUID) (*posting.JobPosting, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get posting by id", err)
	}
	return p, nil
}

// DeactivateOlderThan soft-deletes every active posting whose posted_date
// is strictly before the cutoff. Idempotent: a second run right after
// affects nothing new.
func (r *PostingRepository) DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_postings SET is_active = false, updated_at = now()
		 WHERE posted_date < $1 AND is_active = true`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate stale postings", err)
	}
	return tag.RowsAffected(), nil
}

func scanPostings(rows pgx.Rows) ([]posting.JobPosting, error) {
	var result []posting.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan posting row", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("posting rows iteration failed", err)
	}
	return result, nil
}

func scanPosting(row pgx.Row) (*posting.JobPosting, error) {
	var (
		p          posting.JobPosting
		salaryMin  pgtype.Float8
		salaryMax  pgtype.Float8
		postedDate pgtype.Timestamptz
		source     string
		level      string
	)
	err := row.Scan(
		&p.ID, &p.ExternalID, &p.Title, &p.Company, &p.Location, &p.Country,
		&p.Description, &salaryMin, &salaryMax, &p.Salary.Currency,
		&p.Salary.Period, &p.Category.Label, &p.Category.Tag, &p.ContractType,
		&p.RedirectURL, &postedDate, &source, &p.IsActive, &p.Keywords, &level,
	)
	if err != nil {
		return nil, err
	}
	if salaryMin.Valid {
		p.Salary.Min = &salaryMin.Float64
	}
	if salaryMax.Valid {
		p.Salary.Max = &salaryMax.Float64
	}
	p.PostedDate = postedDate.Time
	p.Source = posting.Source(source)
	p.ExperienceLevel = posting.ExperienceLevel(level)
	return &p, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
