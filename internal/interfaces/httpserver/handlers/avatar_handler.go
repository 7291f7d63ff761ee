package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"caresma-server/internal/infrastructure/avatar"
	"caresma-server/internal/interfaces/httpserver/responses"
	"caresma-server/internal/utils/platformerrors"
)

// AvatarHandler brokers streaming avatar tokens for the browser widget.
type AvatarHandler struct {
	client *avatar.Client
	log    zerolog.Logger
}

// NewAvatarHandler constructs the handler.
func NewAvatarHandler(client *avatar.Client, log zerolog.Logger) *AvatarHandler {
	return &AvatarHandler{
		client: client,
		log:    log.With().Str("handler", "avatar").Logger(),
	}
}

// CreateToken handles POST /v1/avatar/token
// @Summary Mint a streaming avatar token
// @Description Exchanges the server API key for a short-lived client token
// @Tags Avatar
// @Produce json
// @Success 200 {object} avatar.SessionToken
// @Failure 502 {object} responses.ErrorResponse
// @Router /v1/avatar/token [post]
func (h *AvatarHandler) CreateToken(c *gin.Context) {
	token, err := h.client.CreateSessionToken(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to create avatar token")
		return
	}

	c.JSON(http.StatusOK, token)
}

// ListSessions handles GET /v1/avatar/sessions
// @Summary List active avatar streaming sessions
// @Tags Avatar
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 502 {object} responses.ErrorResponse
// @Router /v1/avatar/sessions [get]
func (h *AvatarHandler) ListSessions(c *gin.Context) {
	sessions, err := h.client.ListSessions(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list avatar sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// StopSession handles POST /v1/avatar/sessions/:avatar_session_id/stop
// @Summary Stop an avatar streaming session
// @Tags Avatar
// @Param avatar_session_id path string true "Upstream session ID"
// @Success 204
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /v1/avatar/sessions/{avatar_session_id}/stop [post]
func (h *AvatarHandler) StopSession(c *gin.Context) {
	sessionID := c.Param("avatar_session_id")
	if sessionID == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "avatar session id is required")
		return
	}

	if err := h.client.StopSession(c.Request.Context(), sessionID); err != nil {
		responses.HandleError(c, err, "failed to stop avatar session")
		return
	}

	c.Status(http.StatusNoContent)
}
