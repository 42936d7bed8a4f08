package api

import (
	"io"
	"net/http"
	"strings"

	resdto "jobradar/internal/handler/dto/response"
	"jobradar/internal/handler/httperr"
	"jobradar/internal/handler/middleware"
	"jobradar/internal/pkg/config"
	"jobradar/internal/usecase/commands"
	"jobradar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	cmds commands.ResumeCommands
	q    queries.ResumeQueries
	cfg  config.UploadConfig
}

func NewResumeHandler(cmds commands.ResumeCommands, q queries.ResumeQueries, cfg config.UploadConfig) *ResumeHandler {
	return &ResumeHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Upload a resume
// @Description Upload a PDF resume; keywords are extracted once at upload
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "PDF resume, max 5MB"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /resume/upload [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Resume file is required")
		return
	}
	if fileHeader.Size > h.cfg.MaxSizeByte {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Resume exceeds the maximum file size")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Only PDF files are accepted")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.cfg.MaxSizeByte+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > h.cfg.MaxSizeByte {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Resume exceeds the maximum file size")
		return
	}

	result, err := h.cmds.Upload(c.Request.Context(), commands.UploadResumeRequest{
		UserID:       userID,
		OriginalName: fileHeader.Filename,
		Data:         data,
	})
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Resume upload failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusCreated, resdto.FromUploadResult(result), "Resume uploaded")
}

// @Summary List resumes for a user
// @Tags resume
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /resume/user/{userId} [get]
func (h *ResumeHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
		return
	}
	records, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Failed to list resumes")
		return
	}
	httperr.Success(c, http.StatusOK, gin.H{"resumes": records, "count": len(records)})
}

// @Summary Get a resume
// @Tags resume
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /resume/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resume id")
		return
	}
	rec, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Resume not found")
		return
	}
	httperr.Success(c, http.StatusOK, rec)
}

// @Summary Delete a resume
// @Description Soft-deletes the record and removes the stored file
// @Tags resume
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /resume/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User identity required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resume id")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, userID); err != nil {
		httperr.AbortWithError(c, statusForError(err), err, "Resume delete failed")
		return
	}
	httperr.SuccessMsg(c, http.StatusOK, nil, "Resume deleted")
}
