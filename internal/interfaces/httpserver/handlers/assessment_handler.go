package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/domain/assessment"
	"caresma-server/internal/interfaces/httpserver/requests"
	"caresma-server/internal/interfaces/httpserver/responses"
	"caresma-server/internal/utils/platformerrors"
)

// AssessmentHandler exposes HTTP entrypoints for cognitive assessments.
type AssessmentHandler struct {
	service assessment.Service
	log     zerolog.Logger
}

// NewAssessmentHandler constructs the handler.
func NewAssessmentHandler(service assessment.Service, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: service,
		log:     log.With().Str("handler", "assessment").Logger(),
	}
}

// Analyze handles POST /v1/assessments/analyze
// @Summary Assess a transcript
// @Description Scores a conversation transcript across cognitive domains
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body requests.AnalyzeTranscriptRequest true "Transcript"
// @Success 201 {object} responses.AssessmentPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/assessments/analyze [post]
func (h *AssessmentHandler) Analyze(c *gin.Context) {
	var req requests.AnalyzeTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body: "+err.Error())
		return
	}

	var sessionID *uuid.UUID
	if req.SessionID != nil {
		id, err := uuid.Parse(*req.SessionID)
		if err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid session id: "+*req.SessionID)
			return
		}
		sessionID = &id
	}

	a, err := h.service.AnalyzeTranscript(c.Request.Context(), sessionID, req.Transcript)
	if err != nil {
		responses.HandleError(c, err, "failed to analyze transcript")
		return
	}

	c.JSON(http.StatusCreated, responses.AssessmentFromDomain(a))
}

// Get handles GET /v1/assessments/:assessment_id
// @Summary Get one assessment
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} responses.AssessmentPayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/assessments/{assessment_id} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := h.assessmentID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAssessment(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "failed to get assessment")
		return
	}

	c.JSON(http.StatusOK, responses.AssessmentFromDomain(a))
}

// ListBySession handles GET /v1/sessions/:session_id/assessments
// @Summary List a session's assessments
// @Tags Assessments
// @Produce json
// @Param session_id path string true "Session ID"
// @Param limit query int false "Maximum assessments to return"
// @Success 200 {object} responses.AssessmentListResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/sessions/{session_id}/assessments [get]
func (h *AssessmentHandler) ListBySession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid session id: "+c.Param("session_id"))
		return
	}

	var query requests.ListAssessmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters: "+err.Error())
		return
	}

	assessments, err := h.service.GetSessionAssessments(c.Request.Context(), sessionID, query.Limit)
	if err != nil {
		responses.HandleError(c, err, "failed to list session assessments")
		return
	}

	c.JSON(http.StatusOK, responses.AssessmentsFromDomain(assessments))
}

// Delete handles DELETE /v1/assessments/:assessment_id
// @Summary Delete an assessment
// @Tags Assessments
// @Param assessment_id path string true "Assessment ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/assessments/{assessment_id} [delete]
func (h *AssessmentHandler) Delete(c *gin.Context) {
	id, ok := h.assessmentID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAssessment(c.Request.Context(), id); err != nil {
		responses.HandleError(c, err, "failed to delete assessment")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AssessmentHandler) assessmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("assessment_id"))
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid assessment id: "+c.Param("assessment_id"))
		return uuid.Nil, false
	}
	return id, true
}
