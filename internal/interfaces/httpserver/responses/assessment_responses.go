package responses

import (
	"time"

	"caresma-server/internal/domain/assessment"
)

// AssessmentPayload is the wire form of a completed cognitive assessment.
type AssessmentPayload struct {
	ID        string  `json:"id"`
	SessionID *string `json:"session_id,omitempty"`

	Transcript string `json:"transcript"`

	MemoryScore            *float64 `json:"memory_score,omitempty"`
	LanguageScore          *float64 `json:"language_score,omitempty"`
	ExecutiveFunctionScore *float64 `json:"executive_function_score,omitempty"`
	OrientationScore       *float64 `json:"orientation_score,omitempty"`
	OverallScore           *float64 `json:"overall_score,omitempty"`

	MemoryFeedback            *string `json:"memory_feedback,omitempty"`
	LanguageFeedback          *string `json:"language_feedback,omitempty"`
	ExecutiveFunctionFeedback *string `json:"executive_function_feedback,omitempty"`
	OrientationFeedback       *string `json:"orientation_feedback,omitempty"`
	OverallFeedback           *string `json:"overall_feedback,omitempty"`

	RiskLevel string `json:"risk_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AssessmentFromDomain maps the domain assessment to DTO. The raw analyzer
// metadata stays server-side.
func AssessmentFromDomain(a *assessment.Assessment) AssessmentPayload {
	var sessionID *string
	if a.SessionID != nil {
		id := a.SessionID.String()
		sessionID = &id
	}

	return AssessmentPayload{
		ID:         a.ID.String(),
		SessionID:  sessionID,
		Transcript: a.Transcript,

		MemoryScore:            a.MemoryScore,
		LanguageScore:          a.LanguageScore,
		ExecutiveFunctionScore: a.ExecutiveFunctionScore,
		OrientationScore:       a.OrientationScore,
		OverallScore:           a.OverallScore,

		MemoryFeedback:            a.MemoryFeedback,
		LanguageFeedback:          a.LanguageFeedback,
		ExecutiveFunctionFeedback: a.ExecutiveFunctionFeedback,
		OrientationFeedback:       a.OrientationFeedback,
		OverallFeedback:           a.OverallFeedback,

		RiskLevel: string(a.RiskLevel),

		CreatedAt: a.CreatedAt,
	}
}

// AssessmentListResponse wraps session assessments for consistent responses.
type AssessmentListResponse struct {
	Data []AssessmentPayload `json:"data"`
}

// AssessmentsFromDomain maps an assessment slice to its list response.
func AssessmentsFromDomain(assessments []*assessment.Assessment) AssessmentListResponse {
	data := make([]AssessmentPayload, 0, len(assessments))
	for _, a := range assessments {
		data = append(data, AssessmentFromDomain(a))
	}
	return AssessmentListResponse{Data: data}
}
