package api

import (
	"net/http"

	reqdto "jobradar/internal/handler/dto/request"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/scheduler"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	sched *scheduler.Scheduler
}

func NewSchedulerHandler(sched *scheduler.Scheduler) *SchedulerHandler {
	return &SchedulerHandler{sched: sched}
}

// @Summary Scheduler status
// @Tags scheduler
// @Produce json
// @Success 200 {object} httperr.Envelope
// @Router /jobs/scheduler/status [get]
func (h *SchedulerHandler) Status(c *gin.Context) {
	httperr.Success(c, http.StatusOK, h.sched.Status())
}

// @Summary Trigger a manual fetch
// @Description Runs fetch-and-store for the given keywords synchronously
// @Tags scheduler
// @Accept json
// @Produce json
// @Param request body reqdto.ManualFetchRequest true "Keywords and location"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /jobs/scheduler/fetch [post]
func (h *SchedulerHandler) Fetch(c *gin.Context) {
	var req reqdto.ManualFetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "keywords is required")
		return
	}
	stored, err := h.sched.TriggerFetch(c.Request.Context(), req.Keywords, req.Location)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Manual fetch failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, gin.H{"stored": stored}, "Fetch complete")
}
