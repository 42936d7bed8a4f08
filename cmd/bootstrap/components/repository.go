package components

import (
	"jobradar/internal/infra/filestore"
	repo_impl "jobradar/internal/infra/repository"
	"jobradar/internal/jobboard"
	"jobradar/internal/notify"
	"jobradar/internal/pkg/config"
	"jobradar/internal/scheduler"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Postings
		fx.Annotate(
			repo_impl.NewPostingRepository,
			fx.As(new(commands.PostingStore)),
			fx.As(new(queries.PostingReadStore)),
			fx.As(new(jobboard.PostingStore)),
			fx.As(new(scheduler.PostingCleaner)),
			fx.As(new(notify.PostingStore)),
		),
		// Resumes
		fx.Annotate(
			repo_impl.NewResumeRepository,
			fx.As(new(commands.ResumeStore)),
			fx.As(new(queries.ResumeReadStore)),
			fx.As(new(notify.ResumeStore)),
		),
		// Subscriptions
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(commands.SubscriptionStore)),
			fx.As(new(queries.SubscriptionReadStore)),
			fx.As(new(notify.SubscriptionStore)),
		),
		// Saved jobs
		fx.Annotate(
			repo_impl.NewSavedJobRepository,
			fx.As(new(commands.SavedJobStore)),
			fx.As(new(queries.SavedJobReadStore)),
		),
		fx.Annotate(
			repo_impl.NewSavedJobRepository,
			fx.As(new(queries.UserJobIndex)),
			fx.ResultTags(`name:"saved_index"`),
		),
		// Applications
		fx.Annotate(
			repo_impl.NewApplicationRepository,
			fx.As(new(commands.ApplicationStore)),
			fx.As(new(queries.ApplicationReadStore)),
		),
		fx.Annotate(
			repo_impl.NewApplicationRepository,
			fx.As(new(queries.UserJobIndex)),
			fx.ResultTags(`name:"applied_index"`),
		),
		// Uploaded files
		fx.Annotate(
			NewFileStore,
			fx.As(new(commands.FileStore)),
		),
	),
)

func NewFileStore(cfg config.Config) (*filestore.Local, error) {
	return filestore.NewLocal(cfg.Upload.Dir)
}
