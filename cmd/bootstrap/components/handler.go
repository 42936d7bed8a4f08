package components

import (
	"jobradar/internal/handler"
	"jobradar/internal/handler/api"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/pkg/config"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJobsHandler,
		NewResumeHandler,
		api.NewNotificationsHandler,
		api.NewApplicationsHandler,
		api.NewSchedulerHandler,
		middleware.NewIdentity,
	),
	fx.Invoke(handler.NewRouter),
)

func NewResumeHandler(cmds commands.ResumeCommands, q queries.ResumeQueries, cfg config.Config) *api.ResumeHandler {
	return api.NewResumeHandler(cmds, q, cfg.Upload)
}
