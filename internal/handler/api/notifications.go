package api

import (
	"net/http"

	domsub "jobradar/internal/domain/subscription"
	reqdto "jobradar/internal/handler/dto/request"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationsHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewNotificationsHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *NotificationsHandler {
	return &NotificationsHandler{cmds: cmds, q: q}
}

// @Summary Subscribe to job digests
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscription details"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /notifications/subscribe [post]
func (h *NotificationsHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "email and frequency are required")
		return
	}
	sub, err := h.cmds.Subscribe(c.Request.Context(), commands.SubscribeRequest{
		UserID:      userID,
		Email:       req.Email,
		Type:        domsub.DigestType(req.Type),
		Frequency:   domsub.Frequency(req.Frequency),
		Preferences: req.Preferences.ToDomain(),
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Subscribe failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusCreated, gin.H{
		"id":        sub.ID,
		"email":     sub.Email,
		"type":      sub.Type,
		"frequency": sub.Frequency,
	}, "Subscribed")
}

// @Summary Unsubscribe from job digests
// @Description Accepts the email alone or email plus unsubscribe token
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.UnsubscribeRequest true "Unsubscribe request"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /notifications/unsubscribe [post]
func (h *NotificationsHandler) Unsubscribe(c *gin.Context) {
	var req reqdto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "email is required")
		return
	}
	if err := h.cmds.Unsubscribe(c.Request.Context(), req.Email, req.Token); err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Unsubscribe failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Unsubscribed")
}

// @Summary Update subscription preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body reqdto.UpdatePreferencesRequest true "New preferences"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /notifications/{id}/preferences [put]
func (h *NotificationsHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid subscription id")
		return
	}
	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "frequency is required")
		return
	}
	err = h.cmds.UpdatePreferences(c.Request.Context(), id, userID,
		req.Preferences.ToDomain(), domsub.Frequency(req.Frequency))
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Preference update failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Preferences updated")
}

// @Summary List own subscriptions
// @Tags notifications
// @Produce json
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	subs, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to list subscriptions")
		return
	}
	httperr.Success(c, http.StatusOK, gin.H{"subscriptions": subs, "count": len(subs)})
}

// @Summary Subscription status by email
// @Tags notifications
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /notifications/status [get]
func (h *NotificationsHandler) Status(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "email is required")
		return
	}
	statuses, err := h.q.StatusByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to load status")
		return
	}
	httperr.Success(c, http.StatusOK, gin.H{"subscriptions": statuses, "count": len(statuses)})
}
