package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobradar/internal/handler/api"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/pkg/config"
	"jobradar/internal/scheduler"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	jobsHandler *api.JobsHandler,
	resumeHandler *api.ResumeHandler,
	notificationsHandler *api.NotificationsHandler,
	applicationsHandler *api.ApplicationsHandler,
	schedulerHandler *api.SchedulerHandler,
	identity *middleware.Identity,
	sched *scheduler.Scheduler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, jobsHandler, resumeHandler, notificationsHandler, applicationsHandler, schedulerHandler, identity, sched)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	jobsHandler *api.JobsHandler,
	resumeHandler *api.ResumeHandler,
	notificationsHandler *api.NotificationsHandler,
	applicationsHandler *api.ApplicationsHandler,
	schedulerHandler *api.SchedulerHandler,
	identity *middleware.Identity,
	sched *scheduler.Scheduler,
) {
	engine.GET("/api/health", healthCheck(sched))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		jobs := apiGroup.Group("/jobs")
		{
			addRoutes(jobs, []route{
				{Method: http.MethodGet, Path: "/search", Handler: jobsHandler.Search},
				{Method: http.MethodPost, Path: "/match", Handler: jobsHandler.Match},
				{Method: http.MethodGet, Path: "/sources/list", Handler: jobsHandler.Sources},
				{Method: http.MethodGet, Path: "/scheduler/status", Handler: schedulerHandler.Status},
				{Method: http.MethodPost, Path: "/scheduler/fetch", Handler: schedulerHandler.Fetch},
				{Method: http.MethodGet, Path: "/:id", Handler: jobsHandler.Get},
			})

			userRequired := jobs.Group("")
			userRequired.Use(identity.RequireUser())
			addRoutes(userRequired, []route{
				{Method: http.MethodPost, Path: "/:id/save", Handler: jobsHandler.Save},
				{Method: http.MethodPost, Path: "/:id/apply", Handler: jobsHandler.Apply},
			})
		}

		resume := apiGroup.Group("/resume")
		{
			addRoutes(resume, []route{
				{Method: http.MethodGet, Path: "/user/:userId", Handler: resumeHandler.ListByUser},
			})

			userRequired := resume.Group("")
			userRequired.Use(identity.RequireUser())
			addRoutes(userRequired, []route{
				{Method: http.MethodPost, Path: "/upload", Handler: resumeHandler.Upload},
				{Method: http.MethodGet, Path: "/:id", Handler: resumeHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: resumeHandler.Delete},
			})
		}

		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/unsubscribe", Handler: notificationsHandler.Unsubscribe},
				{Method: http.MethodGet, Path: "/status", Handler: notificationsHandler.Status},
			})

			userRequired := notifications.Group("")
			userRequired.Use(identity.RequireUser())
			addRoutes(userRequired, []route{
				{Method: http.MethodPost, Path: "/subscribe", Handler: notificationsHandler.Subscribe},
				{Method: http.MethodPut, Path: "/:id/preferences", Handler: notificationsHandler.UpdatePreferences},
				{Method: http.MethodGet, Path: "", Handler: notificationsHandler.List},
			})
		}

		applications := apiGroup.Group("/applications")
		applications.Use(identity.RequireUser())
		{
			addRoutes(applications, []route{
				{Method: http.MethodGet, Path: "", Handler: applicationsHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: applicationsHandler.Get},
				{Method: http.MethodPut, Path: "/:id/status", Handler: applicationsHandler.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/interviews", Handler: applicationsHandler.AddInterview},
				{Method: http.MethodPut, Path: "/:id/interviews/:interviewId", Handler: applicationsHandler.UpdateInterviewOutcome},
			})
		}

		savedJobs := apiGroup.Group("/saved-jobs")
		savedJobs.Use(identity.RequireUser())
		{
			addRoutes(savedJobs, []route{
				{Method: http.MethodGet, Path: "", Handler: applicationsHandler.ListSaved},
				{Method: http.MethodPut, Path: "/:id", Handler: applicationsHandler.UpdateSaved},
				{Method: http.MethodDelete, Path: "/:id", Handler: applicationsHandler.RemoveSaved},
			})
		}
	}
}

// @Summary Health check
// @Description Service liveness plus the scheduler status block
// @Tags health
// @Produce json
// @Success 200 {object} httperr.Envelope
// @Router /health [get]
func healthCheck(sched *scheduler.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.Success(c, http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "jobradar",
			"scheduler": sched.Status(),
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
