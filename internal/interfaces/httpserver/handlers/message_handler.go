package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/domain/message"
	"caresma-server/internal/interfaces/httpserver/requests"
	"caresma-server/internal/interfaces/httpserver/responses"
	"caresma-server/internal/utils/platformerrors"
)

// MessageHandler exposes HTTP entrypoints for thread transcripts.
type MessageHandler struct {
	service message.Service
	log     zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service message.Service, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("handler", "message").Logger(),
	}
}

// Create handles POST /v1/threads/:thread_id/messages
// @Summary Append a message to a thread
// @Description Persists one user or assistant message on a conversation thread
// @Tags Messages
// @Accept json
// @Produce json
// @Param thread_id path string true "Thread ID"
// @Param request body requests.CreateMessageRequest true "Message"
// @Success 201 {object} responses.MessagePayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/threads/{thread_id}/messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	threadID, ok := h.threadID(c)
	if !ok {
		return
	}

	var req requests.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body: "+err.Error())
		return
	}

	msg, err := h.service.CreateMessage(c.Request.Context(), threadID, message.Role(req.Role), req.Content)
	if err != nil {
		responses.HandleError(c, err, "failed to create message")
		return
	}

	c.JSON(http.StatusCreated, responses.MessageFromDomain(msg))
}

// List handles GET /v1/threads/:thread_id/messages
// @Summary List thread messages
// @Description Returns the earliest messages of a thread in creation order
// @Tags Messages
// @Produce json
// @Param thread_id path string true "Thread ID"
// @Param limit query int false "Maximum messages to return"
// @Success 200 {object} responses.MessageListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/threads/{thread_id}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	threadID, ok := h.threadID(c)
	if !ok {
		return
	}

	var query requests.ListMessagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters: "+err.Error())
		return
	}

	msgs, err := h.service.GetThreadMessages(c.Request.Context(), threadID, query.Limit)
	if err != nil {
		responses.HandleError(c, err, "failed to list thread messages")
		return
	}

	c.JSON(http.StatusOK, responses.MessagesFromDomain(msgs))
}

// Count handles GET /v1/threads/:thread_id/messages/count
// @Summary Count thread messages
// @Description Returns total and per-role message counts for a thread
// @Tags Messages
// @Produce json
// @Param thread_id path string true "Thread ID"
// @Success 200 {object} message.Count
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/threads/{thread_id}/messages/count [get]
func (h *MessageHandler) Count(c *gin.Context) {
	threadID, ok := h.threadID(c)
	if !ok {
		return
	}

	count, err := h.service.GetMessageCount(c.Request.Context(), threadID)
	if err != nil {
		responses.HandleError(c, err, "failed to count thread messages")
		return
	}

	c.JSON(http.StatusOK, count)
}

func (h *MessageHandler) threadID(c *gin.Context) (uuid.UUID, bool) {
	threadID, err := uuid.Parse(c.Param("thread_id"))
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid thread id: "+c.Param("thread_id"))
		return uuid.Nil, false
	}
	return threadID, true
}
