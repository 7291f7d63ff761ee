package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"caresma-server/internal/infrastructure/metrics"
	"caresma-server/internal/utils/platformerrors"
)

// DefaultListLimit bounds per-session assessment listings.
const DefaultListLimit = 10

// Service defines cognitive assessment operations.
type Service interface {
	AnalyzeTranscript(ctx context.Context, sessionID *uuid.UUID, transcript string) (*Assessment, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error)
	GetSessionAssessments(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Assessment, error)
	DeleteAssessment(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	analyzer Analyzer
	log      zerolog.Logger
}

// NewService creates a new assessment service.
func NewService(repo Repository, analyzer Analyzer, log zerolog.Logger) Service {
	return &service{
		repo:     repo,
		analyzer: analyzer,
		log:      log.With().Str("component", "assessment-service").Logger(),
	}
}

// AnalyzeTranscript runs the analyzer over a transcript and persists the
// scored result. The session link is optional; ad-hoc transcripts are
// assessed without one.
func (s *service) AnalyzeTranscript(ctx context.Context, sessionID *uuid.UUID, transcript string) (*Assessment, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"transcript must not be empty",
			nil,
		)
	}

	s.log.Info().
		Interface("session_id", sessionID).
		Int("transcript_length", len(transcript)).
		Msg("starting cognitive assessment")

	start := time.Now()
	analysis, err := s.analyzer.Analyze(ctx, transcript)
	if err != nil {
		s.log.Error().Err(err).Msg("transcript analysis failed")
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "transcript analysis failed")
	}
	metrics.ObserveAnalysisDuration(time.Since(start))

	riskLevel := RiskLevel(analysis.Overall.RiskLevel)
	if !ValidateRiskLevel(string(riskLevel)) {
		// Analyzer returned something off-script; fall back to the score.
		riskLevel = ClassifyRisk(analysis.Overall.Score)
	}

	a := &Assessment{
		SessionID:  sessionID,
		Transcript: transcript,

		MemoryScore:            &analysis.Memory.Score,
		LanguageScore:          &analysis.Language.Score,
		ExecutiveFunctionScore: &analysis.ExecutiveFunction.Score,
		OrientationScore:       &analysis.Orientation.Score,
		OverallScore:           &analysis.Overall.Score,

		MemoryFeedback:            &analysis.Memory.Feedback,
		LanguageFeedback:          &analysis.Language.Feedback,
		ExecutiveFunctionFeedback: &analysis.ExecutiveFunction.Feedback,
		OrientationFeedback:       &analysis.Orientation.Feedback,

		OverallFeedback: &analysis.Overall.Feedback,
		RiskLevel:       riskLevel,

		Metadata: map[string]any{"raw_analysis": analysis},
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	metrics.RecordAssessmentCompleted(string(riskLevel))
	s.log.Info().
		Str("assessment_id", a.ID.String()).
		Float64("overall_score", analysis.Overall.Score).
		Str("risk_level", string(riskLevel)).
		Msg("assessment completed")

	return a, nil
}

func (s *service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("assessment not found: %s", id),
			nil,
		)
	}
	return a, nil
}

func (s *service) GetSessionAssessments(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Assessment, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.FindBySessionID(ctx, sessionID, limit)
}

func (s *service) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("assessment not found: %s", id),
			nil,
		)
	}
	return s.repo.Delete(ctx, id)
}
