package components

import (
	"log/slog"
	"net/http"

	"jobradar/internal/infra/pdftext"
	"jobradar/internal/jobboard"
	"jobradar/internal/notify"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/config"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pdftext.NewExtractor,
		fx.As(new(commands.TextExtractor)),
	),
	NewBoardsHTTPClient,
	NewBoardAdapters,
	jobboard.NewAggregator,
	fx.Annotate(
		func(a *jobboard.Aggregator) *jobboard.Aggregator { return a },
		fx.As(new(queries.LiveFetcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResumeCommands,
		commands.NewJobCommands,
		commands.NewSubscriptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		fx.Annotate(
			queries.NewJobQueries,
			fx.ParamTags("", "", `name:"saved_index"`, `name:"applied_index"`, ""),
		),
		queries.NewResumeQueries,
		queries.NewSubscriptionQueries,
		queries.NewApplicationQueries,
	),
)

func NewBoardsHTTPClient(cfg config.Config) *http.Client {
	return jobboard.NewHTTPClient(cfg.Boards)
}

func NewBoardAdapters(cfg config.Config, client *http.Client) []jobboard.Adapter {
	return jobboard.NewAdapters(cfg.Boards, client)
}

// NotifyModule wires the digest dispatcher and the SMTP sender.
var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewSMTPSender,
		NewDispatcher,
		fx.Annotate(
			func(d *notify.Dispatcher) *notify.Dispatcher { return d },
			fx.As(new(commands.WelcomeMailer)),
		),
	),
)

func NewSMTPSender(cfg config.Config) notify.Sender {
	return notify.NewSMTPSender(cfg.SMTP)
}

func NewDispatcher(
	subs notify.SubscriptionStore,
	resumes notify.ResumeStore,
	postings notify.PostingStore,
	sender notify.Sender,
	clk clock.Clock,
	logger *slog.Logger,
) *notify.Dispatcher {
	return notify.NewDispatcher(subs, resumes, postings, sender, clk, logger)
}
