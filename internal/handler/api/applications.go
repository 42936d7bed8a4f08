package api

import (
	"net/http"

	domapp "jobradar/internal/domain/application"
	reqdto "jobradar/internal/handler/dto/request"
	resdto "jobradar/internal/handler/dto/response"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	cmds commands.JobCommands
	q    queries.ApplicationQueries
}

func NewApplicationsHandler(cmds commands.JobCommands, q queries.ApplicationQueries) *ApplicationsHandler {
	return &ApplicationsHandler{cmds: cmds, q: q}
}

// @Summary List own applications
// @Tags applications
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /applications [get]
func (h *ApplicationsHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	result, err := h.q.ListByUser(c.Request.Context(), queries.ApplicationListParams{
		UserID: userID,
		Status: domapp.Status(c.Query("status")),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to list applications")
		return
	}
	httperr.Success(c, http.StatusOK, resdto.FromPagedApplications(result))
}

// @Summary Get an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /applications/{id} [get]
func (h *ApplicationsHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application id")
		return
	}
	app, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Application not found")
		return
	}
	httperr.Success(c, http.StatusOK, app)
}

// @Summary Update application status
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body reqdto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /applications/{id}/status [put]
func (h *ApplicationsHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application id")
		return
	}
	var req reqdto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "status is required")
		return
	}
	if err := h.cmds.UpdateApplicationStatus(c.Request.Context(), id, userID, domapp.Status(req.Status), req.Notes); err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Status update failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Status updated")
}

// @Summary Add an interview round
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body reqdto.AddInterviewRequest true "Interview details"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /applications/{id}/interviews [post]
func (h *ApplicationsHandler) AddInterview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application id")
		return
	}
	var req reqdto.AddInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "type is required")
		return
	}
	interviewID, err := h.cmds.AddInterview(c.Request.Context(), id, userID, commands.InterviewRequest{
		Round:       req.Round,
		Date:        req.Date,
		Type:        req.Type,
		Interviewer: req.Interviewer,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to add interview")
		return
	}
	httperr.SuccessMsg(c, http.StatusCreated, gin.H{"interviewId": interviewID}, "Interview added")
}

// @Summary Record an interview outcome
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param interviewId path string true "Interview ID"
// @Param request body reqdto.InterviewOutcomeRequest true "Outcome"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /applications/{id}/interviews/{interviewId} [put]
func (h *ApplicationsHandler) UpdateInterviewOutcome(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application id")
		return
	}
	interviewID, err := uuid.Parse(c.Param("interviewId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interview id")
		return
	}
	var req reqdto.InterviewOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "outcome is required")
		return
	}
	if err := h.cmds.UpdateInterviewOutcome(c.Request.Context(), id, interviewID, userID, req.Outcome, req.Notes); err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to record outcome")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Outcome recorded")
}

// @Summary List own saved jobs
// @Tags saved-jobs
// @Produce json
// @Param priority query string false "Priority filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /saved-jobs [get]
func (h *ApplicationsHandler) ListSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	result, err := h.q.ListSaved(c.Request.Context(), queries.SavedJobListParams{
		UserID:   userID,
		Priority: domapp.Priority(c.Query("priority")),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to list saved jobs")
		return
	}
	httperr.Success(c, http.StatusOK, resdto.FromPagedSavedJobs(result))
}

// @Summary Update a saved job
// @Tags saved-jobs
// @Accept json
// @Produce json
// @Param id path string true "Saved job ID"
// @Param request body reqdto.UpdateSavedJobRequest true "Changed fields"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /saved-jobs/{id} [put]
func (h *ApplicationsHandler) UpdateSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid saved job id")
		return
	}
	var req reqdto.UpdateSavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	err = h.cmds.UpdateSavedJob(c.Request.Context(), id, userID, commands.UpdateSavedJobRequest{
		Notes:    req.Notes,
		Priority: domapp.Priority(req.Priority),
		Tags:     req.Tags,
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Saved job update failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Saved job updated")
}

// @Summary Remove a saved job
// @Tags saved-jobs
// @Produce json
// @Param id path string true "Saved job ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /saved-jobs/{id} [delete]
func (h *ApplicationsHandler) RemoveSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid saved job id")
		return
	}
	if err := h.cmds.RemoveSavedJob(c.Request.Context(), id, userID); err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Saved job removal failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Saved job removed")
}
