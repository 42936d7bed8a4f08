//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"jobradar/internal/domain/posting"
	"jobradar/internal/handler/api"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/pkg/errs"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"
	"jobradar/tests/common/httptest"
	commandsmock "jobradar/tests/mock/commands"
	queriesmock "jobradar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockJobCommands
	mockQueries  *queriesmock.MockJobQueries
	handler      *api.JobsHandler
}

func (s *JobsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockJobCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockJobQueries(s.mockCtrl)
	s.handler = api.NewJobsHandler(s.mockCommands, s.mockQueries)

	identity := middleware.NewIdentity()

	jobs := s.router.Group("/api/jobs")
	jobs.GET("/search", s.handler.Search)
	jobs.POST("/match", s.handler.Match)
	jobs.GET("/sources/list", s.handler.Sources)
	jobs.GET("/:id", s.handler.Get)
	jobs.POST("/:id/save", identity.RequireUser(), s.handler.Save)
	jobs.POST("/:id/apply", identity.RequireUser(), s.handler.Apply)
}

func (s *JobsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobsHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobsHandlerTestSuite))
}

func (s *JobsHandlerTestSuite) TestSearch() {
	s.Run("success with defaults", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), queries.SearchParams{Page: 1, Limit: 20}).
			Return(&queries.SearchResult{
				Postings:   []posting.JobPosting{{ID: uuid.New(), Title: "Go Developer"}},
				TotalCount: 1,
				Page:       1,
				Limit:      20,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/search", nil, "")

		var data struct {
			Jobs []posting.JobPosting `json:"jobs"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &data)
		s.Require().Len(data.Jobs, 1)
		s.Equal("Go Developer", data.Jobs[0].Title)
	})

	s.Run("query parameters are passed through", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), queries.SearchParams{
				Keywords: "golang",
				Location: "London",
				Source:   posting.SourceReed,
				Page:     2,
				Limit:    5,
			}).
			Return(&queries.SearchResult{Page: 2, Limit: 5}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/jobs/search?keywords=golang&location=London&source=reed&page=2&limit=5", nil, "")

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("query failure returns 500", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/search", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Job search failed")
	})
}

func (s *JobsHandlerTestSuite) TestMatch() {
	url := "/api/jobs/match"

	s.Run("success", func() {
		s.mockQueries.EXPECT().
			Match(gomock.Any(), gomock.Any()).
			Return([]queries.MatchedPosting{
				{ScoredPosting: posting.ScoredPosting{
					JobPosting: posting.JobPosting{Title: "React Developer"},
					MatchScore: 30,
				}},
			}, nil)

		body := map[string]any{"resumeKeywords": []string{"react"}}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var data struct {
			Matches []queries.MatchedPosting `json:"matches"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &data)
		s.Require().Len(data.Matches, 1)
		s.Equal(30, data.Matches[0].MatchScore)
	})

	s.Run("missing keywords is 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "resumeKeywords is required")
	})

	s.Run("empty keyword list is 400", func() {
		body := map[string]any{"resumeKeywords": []string{}}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "resumeKeywords is required")
	})
}

func (s *JobsHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(&posting.JobPosting{ID: id, Title: "Platform Engineer"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/"+id.String(), nil, "")

		var data posting.JobPosting
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &data)
		s.Equal(id, data.ID)
	})

	s.Run("unknown id is 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.ErrPostingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Job not found")
	})

	s.Run("malformed id is 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid job id")
	})
}

func (s *JobsHandlerTestSuite) TestSources() {
	s.mockQueries.EXPECT().Sources().Return([]queries.SourceInfo{
		{ID: "adzuna", Name: "Adzuna", Country: "GB"},
		{ID: "reed", Name: "Reed", Country: "GB"},
		{ID: "ziprecruiter", Name: "ZipRecruiter", Country: "US"},
	})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/jobs/sources/list", nil, "")

	var data struct {
		Sources []queries.SourceInfo `json:"sources"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &data)
	s.Len(data.Sources, 3)
}

func (s *JobsHandlerTestSuite) TestSave() {
	jobID := uuid.New()
	userID := uuid.New()
	url := "/api/jobs/" + jobID.String() + "/save"

	s.Run("success with options", func() {
		savedID := uuid.New()
		s.mockCommands.EXPECT().
			SaveJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.SaveJobRequest) (uuid.UUID, error) {
				s.Equal(userID, req.UserID)
				s.Equal(jobID, req.JobID)
				s.Equal("high", string(req.Priority))
				return savedID, nil
			})

		body := map[string]any{"priority": "high"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID.String())

		var data struct {
			ID uuid.UUID `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &data)
		s.Equal(savedID, data.ID)
	})

	s.Run("missing identity is 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User identity required")
	})

	s.Run("duplicate save is 400", func() {
		s.mockCommands.EXPECT().
			SaveJob(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrJobAlreadySaved)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, userID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Save job failed")
	})

	s.Run("unknown job is 404", func() {
		s.mockCommands.EXPECT().
			SaveJob(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrPostingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, userID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Save job failed")
	})
}

func (s *JobsHandlerTestSuite) TestApply() {
	jobID := uuid.New()
	userID := uuid.New()
	resumeID := uuid.New()
	url := "/api/jobs/" + jobID.String() + "/apply"

	s.Run("success", func() {
		appID := uuid.New()
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.ApplyRequest) (uuid.UUID, error) {
				s.Equal(userID, req.UserID)
				s.Equal(jobID, req.JobID)
				s.Equal(resumeID, req.ResumeID)
				return appID, nil
			})

		body := map[string]any{"resumeId": resumeID.String()}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID.String())

		var data struct {
			ID uuid.UUID `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &data)
		s.Equal(appID, data.ID)
	})

	s.Run("missing resume id is 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, userID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "resumeId is required")
	})

	s.Run("missing identity is 401", func() {
		body := map[string]any{"resumeId": resumeID.String()}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User identity required")
	})

	s.Run("second application is 400", func() {
		s.mockCommands.EXPECT().
			Apply(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrAlreadyApplied)

		body := map[string]any{"resumeId": resumeID.String()}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Apply failed")
	})
}
