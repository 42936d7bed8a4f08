package queries

import (
	"context"

	domresume "jobradar/internal/domain/resume"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResumeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domresume.Record, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]domresume.Record, error)
}

type ResumeQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*domresume.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domresume.Record, error)
}

type resumeQueriesImpl struct {
	resumes ResumeReadStore
}

func NewResumeQueries(resumes ResumeReadStore) ResumeQueries {
	return &resumeQueriesImpl{resumes: resumes}
}

func (q *resumeQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*domresume.Record, error) {
	rec, err := q.resumes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResumeNotFound
		}
		return nil, err
	}
	if rec.UserID != actorID {
		return nil, errs.ErrResumeNotFound
	}
	return rec, nil
}

// ListByUser returns active resumes newest-first.
func (q *resumeQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]domresume.Record, error) {
	return q.resumes.FindByUser(ctx, userID)
}
