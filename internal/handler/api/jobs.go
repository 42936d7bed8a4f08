package api

import (
	"net/http"
	"strconv"

	domapp "jobradar/internal/domain/application"
	"jobradar/internal/domain/posting"
	reqdto "jobradar/internal/handler/dto/request"
	resdto "jobradar/internal/handler/dto/response"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobsHandler struct {
	cmds commands.JobCommands
	q    queries.JobQueries
}

func NewJobsHandler(cmds commands.JobCommands, q queries.JobQueries) *JobsHandler {
	return &JobsHandler{cmds: cmds, q: q}
}

// @Summary Search jobs
// @Description Search stored postings; falls back to a live board fetch when storage is empty and keywords were given
// @Tags jobs
// @Produce json
// @Param keywords query string false "Keyword query"
// @Param location query string false "Location filter"
// @Param source query string false "Source filter (adzuna, reed, ziprecruiter)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} httperr.Envelope
// @Failure 500 {object} httperr.Envelope
// @Router /jobs/search [get]
func (h *JobsHandler) Search(c *gin.Context) {
	params := queries.SearchParams{
		Keywords: c.Query("keywords"),
		Location: c.Query("location"),
		Source:   posting.Source(c.Query("source")),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}
	result, err := h.q.Search(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Job search failed")
		return
	}
	httperr.Success(c, http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Match jobs against resume keywords
// @Description Rank stored postings by match score for the given keywords
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body reqdto.MatchJobsRequest true "Match request"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /jobs/match [post]
func (h *JobsHandler) Match(c *gin.Context) {
	var req reqdto.MatchJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "resumeKeywords is required")
		return
	}
	matches, err := h.q.Match(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Job match failed")
		return
	}
	httperr.Success(c, http.StatusOK, resdto.FromMatches(matches))
}

// @Summary Get job by id
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /jobs/{id} [get]
func (h *JobsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid job id")
		return
	}
	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Job not found")
		return
	}
	httperr.Success(c, http.StatusOK, p)
}

// @Summary List job sources
// @Tags jobs
// @Produce json
// @Success 200 {object} httperr.Envelope
// @Router /jobs/sources/list [get]
func (h *JobsHandler) Sources(c *gin.Context) {
	httperr.Success(c, http.StatusOK, gin.H{"sources": h.q.Sources()})
}

// @Summary Save a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body reqdto.SaveJobRequest false "Save options"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /jobs/{id}/save [post]
func (h *JobsHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid job id")
		return
	}
	var req reqdto.SaveJobRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
			return
		}
	}
	id, err := h.cmds.SaveJob(c.Request.Context(), commands.SaveJobRequest{
		UserID:     userID,
		JobID:      jobID,
		Notes:      req.Notes,
		Priority:   domapp.Priority(req.Priority),
		Tags:       req.Tags,
		MatchScore: req.MatchScore,
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Save job failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusCreated, gin.H{"id": id}, "Job saved")
}

// @Summary Apply to a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body reqdto.ApplyJobRequest true "Application details"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /jobs/{id}/apply [post]
func (h *JobsHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid job id")
		return
	}
	var req reqdto.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "resumeId is required")
		return
	}
	id, err := h.cmds.Apply(c.Request.Context(), commands.ApplyRequest{
		UserID:      userID,
		JobID:       jobID,
		ResumeID:    req.ResumeID,
		CoverLetter: req.CoverLetter,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Apply failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusCreated, gin.H{"id": id}, "Application submitted")
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return fallback
}
