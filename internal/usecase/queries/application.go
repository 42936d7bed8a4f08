package queries

import (
	"context"

	domapp "jobradar/internal/domain/application"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/errs"

	"github.com/google/uuid"
)

type ApplicationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domapp.Application, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status domapp.Status, limit, offset int) ([]domapp.Application, int, error)
}

type SavedJobReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, priority domapp.Priority, limit, offset int) ([]domapp.SavedJob, int, error)
}

type ApplicationListParams struct {
	UserID uuid.UUID
	Status domapp.Status
	Page   int
	Limit  int
}

type SavedJobListParams struct {
	UserID   uuid.UUID
	Priority domapp.Priority
	Page     int
	Limit    int
}

type PagedApplications struct {
	Applications []domapp.Application
	TotalCount   int
	Page         int
	Limit        int
}

type PagedSavedJobs struct {
	SavedJobs  []domapp.SavedJob
	TotalCount int
	Page       int
	Limit      int
}

type ApplicationQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*domapp.Application, error)
	ListByUser(ctx context.Context, p ApplicationListParams) (*PagedApplications, error)
	ListSaved(ctx context.Context, p SavedJobListParams) (*PagedSavedJobs, error)
}

type applicationQueriesImpl struct {
	applications ApplicationReadStore
	saved        SavedJobReadStore
}

func NewApplicationQueries(applications ApplicationReadStore, saved SavedJobReadStore) ApplicationQueries {
	return &applicationQueriesImpl{applications: applications, saved: saved}
}

func (q *applicationQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*domapp.Application, error) {
	app, err := q.applications.FindByID(ctx, id)
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

func (q *applicationQueriesImpl) ListByUser(ctx context.Context, p ApplicationListParams) (*PagedApplications, error) {
	if p.Status != "" && !p.Status.Valid() {
		return nil, errs.ErrInvalidStatus
	}
	page, limit := normalizePage(p.Page, p.Limit)
	apps, total, err := q.applications.FindByUser(ctx, p.UserID, p.Status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &PagedApplications{Applications: apps, TotalCount: total, Page: page, Limit: limit}, nil
}

func (q *applicationQueriesImpl) ListSaved(ctx context.Context, p SavedJobListParams) (*PagedSavedJobs, error) {
	if p.Priority != "" && !p.Priority.Valid() {
		return nil, errs.ErrDomainValidation
	}
	page, limit := normalizePage(p.Page, p.Limit)
	saved, total, err := q.saved.FindByUser(ctx, p.UserID, p.Priority, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &PagedSavedJobs{SavedJobs: saved, TotalCount: total, Page: page, Limit: limit}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return page, limit
}
