package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "caresma-server/internal/domain/assessment"
)

// Assessment represents the database schema for cognitive assessments.
type Assessment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionID *uuid.UUID `gorm:"type:uuid;index:idx_assessment_session_created"`

	Transcript string `gorm:"type:text;not null"`

	MemoryScore            *float64
	LanguageScore          *float64
	ExecutiveFunctionScore *float64
	OrientationScore       *float64
	OverallScore           *float64

	MemoryFeedback            *string `gorm:"type:text"`
	LanguageFeedback          *string `gorm:"type:text"`
	ExecutiveFunctionFeedback *string `gorm:"type:text"`
	OrientationFeedback       *string `gorm:"type:text"`

	OverallFeedback *string `gorm:"type:text"`
	RiskLevel       *string `gorm:"type:varchar(10)"`

	AssessmentMetadata datatypes.JSONMap `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"index:idx_assessment_session_created"`
	UpdatedAt time.Time
}

// BeforeCreate assigns the generated identifier.
func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewSchemaAssessment creates a database schema from a domain assessment.
func NewSchemaAssessment(a *domain.Assessment) *Assessment {
	entity := &Assessment{
		ID:         a.ID,
		SessionID:  a.SessionID,
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

		OverallFeedback:    a.OverallFeedback,
		AssessmentMetadata: datatypes.JSONMap(a.Metadata),

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.RiskLevel != "" {
		riskLevel := string(a.RiskLevel)
		entity.RiskLevel = &riskLevel
	}

	return entity
}

// EtoD converts the database schema to a domain assessment.
func (a *Assessment) EtoD() *domain.Assessment {
	result := &domain.Assessment{
		ID:         a.ID,
		SessionID:  a.SessionID,
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

		OverallFeedback: a.OverallFeedback,
		Metadata:        map[string]any(a.AssessmentMetadata),

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.RiskLevel != nil {
		result.RiskLevel = domain.RiskLevel(*a.RiskLevel)
	}

	return result
}
