package assessment

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies the overall cognitive risk of a transcript.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// ValidateRiskLevel reports whether input is a known risk level.
func ValidateRiskLevel(input string) bool {
	switch RiskLevel(input) {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

// ClassifyRisk maps an overall 0-10 score onto a risk level. Used as a
// consistency check against the level the analyzer reports.
func ClassifyRisk(overallScore float64) RiskLevel {
	switch {
	case overallScore >= 7.0:
		return RiskLow
	case overallScore >= 4.0:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// DomainResult is one scored cognitive domain.
type DomainResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// OverallResult is the aggregate judgement across all domains.
type OverallResult struct {
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback"`
	RiskLevel string  `json:"risk_level"`
}

// Analysis is the structured output of a transcript analyzer.
type Analysis struct {
	Memory            DomainResult  `json:"memory"`
	Language          DomainResult  `json:"language"`
	ExecutiveFunction DomainResult  `json:"executive_function"`
	Orientation       DomainResult  `json:"orientation"`
	Overall           OverallResult `json:"overall"`
}

// Assessment is a persisted cognitive assessment of one transcript.
type Assessment struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`

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

	OverallFeedback *string   `json:"overall_feedback,omitempty"`
	RiskLevel       RiskLevel `json:"risk_level,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
