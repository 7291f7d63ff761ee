package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/domain/session"
	"caresma-server/internal/infrastructure/auth"
	"caresma-server/internal/interfaces/httpserver/requests"
	"caresma-server/internal/interfaces/httpserver/responses"
	"caresma-server/internal/utils/pagination"
	"caresma-server/internal/utils/platformerrors"
)

// SessionHandler exposes HTTP entrypoints for assessment sessions.
type SessionHandler struct {
	service session.Service
	log     zerolog.Logger
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(service session.Service, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With().Str("handler", "session").Logger(),
	}
}

// Create handles POST /v1/sessions
// @Summary Start an assessment session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body requests.CreateSessionRequest false "Session"
// @Success 201 {object} responses.SessionPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req requests.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body: "+err.Error())
		return
	}

	sess, err := h.service.CreateSession(c.Request.Context(), auth.UserID(c), session.CreateParams{
		Title:    req.Title,
		Metadata: req.Metadata,
		Notes:    req.Notes,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create session")
		return
	}

	c.JSON(http.StatusCreated, responses.SessionFromDomain(sess))
}

// Get handles GET /v1/sessions/:session_id
// @Summary Get one session
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.SessionPayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions/{session_id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	sess, err := h.service.GetSession(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		responses.HandleError(c, err, "failed to get session")
		return
	}

	c.JSON(http.StatusOK, responses.SessionFromDomain(sess))
}

// List handles GET /v1/sessions
// @Summary List the caller's sessions
// @Tags Sessions
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Sessions per page"
// @Success 200 {object} pagination.Page[responses.SessionPayload]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	var query requests.ListSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters: "+err.Error())
		return
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 || pageSize > session.DefaultListLimit {
		pageSize = session.DefaultListLimit
	}

	sessions, total, err := h.service.ListUserSessions(c.Request.Context(), auth.UserID(c), (page-1)*pageSize, pageSize)
	if err != nil {
		responses.HandleError(c, err, "failed to list sessions")
		return
	}

	c.JSON(http.StatusOK, pagination.New(responses.SessionsFromDomain(sessions), total, page, pageSize))
}

// Update handles PATCH /v1/sessions/:session_id
// @Summary Update session fields
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body requests.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} responses.SessionPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions/{session_id} [patch]
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req requests.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body: "+err.Error())
		return
	}

	params := session.UpdateParams{
		Title:    req.Title,
		Metadata: req.Metadata,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		status := session.Status(*req.Status)
		params.Status = &status
	}

	sess, err := h.service.UpdateSession(c.Request.Context(), id, auth.UserID(c), params)
	if err != nil {
		responses.HandleError(c, err, "failed to update session")
		return
	}

	c.JSON(http.StatusOK, responses.SessionFromDomain(sess))
}

// End handles POST /v1/sessions/:session_id/end
// @Summary Complete a session
// @Description Marks the session completed and stamps its end time
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.SessionPayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions/{session_id}/end [post]
func (h *SessionHandler) End(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	sess, err := h.service.EndSession(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		responses.HandleError(c, err, "failed to end session")
		return
	}

	c.JSON(http.StatusOK, responses.SessionFromDomain(sess))
}

// Delete handles DELETE /v1/sessions/:session_id
// @Summary Delete a session and its messages
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions/{session_id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), id, auth.UserID(c)); err != nil {
		responses.HandleError(c, err, "failed to delete session")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid session id: "+c.Param("session_id"))
		return uuid.Nil, false
	}
	return id, true
}
