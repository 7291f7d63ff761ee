package assessment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caresma-server/internal/domain/assessment"
	"caresma-server/internal/utils/platformerrors"
)

type fakeRepository struct {
	assessments map[uuid.UUID]*assessment.Assessment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{assessments: make(map[uuid.UUID]*assessment.Assessment)}
}

func (r *fakeRepository) Create(_ context.Context, a *assessment.Assessment) error {
	a.ID = uuid.New()
	stored := *a
	r.assessments[a.ID] = &stored
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepository) FindBySessionID(_ context.Context, sessionID uuid.UUID, limit int) ([]*assessment.Assessment, error) {
	var result []*assessment.Assessment
	for _, a := range r.assessments {
		if a.SessionID != nil && *a.SessionID == sessionID {
			copied := *a
			result = append(result, &copied)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.assessments, id)
	return nil
}

type fakeAnalyzer struct {
	analysis *assessment.Analysis
	err      error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string) (*assessment.Analysis, error) {
	return f.analysis, f.err
}

func healthyAnalysis() *assessment.Analysis {
	return &assessment.Analysis{
		Memory:            assessment.DomainResult{Score: 8.5, Feedback: "good recall"},
		Language:          assessment.DomainResult{Score: 9.0, Feedback: "fluent"},
		ExecutiveFunction: assessment.DomainResult{Score: 8.0, Feedback: "organized"},
		Orientation:       assessment.DomainResult{Score: 9.5, Feedback: "fully oriented"},
		Overall: assessment.OverallResult{
			Score:     8.75,
			Feedback:  "no concerns",
			RiskLevel: "low",
		},
	}
}

func TestAnalyzeTranscript(t *testing.T) {
	repo := newFakeRepository()
	svc := assessment.NewService(repo, &fakeAnalyzer{analysis: healthyAnalysis()}, zerolog.Nop())
	sessionID := uuid.New()

	a, err := svc.AnalyzeTranscript(context.Background(), &sessionID, "user: today is tuesday\nassistant: that's right")
	require.NoError(t, err)

	require.NotNil(t, a.SessionID)
	assert.Equal(t, sessionID, *a.SessionID)
	assert.Equal(t, assessment.RiskLow, a.RiskLevel)
	require.NotNil(t, a.OverallScore)
	assert.InDelta(t, 8.75, *a.OverallScore, 0.001)
	require.NotNil(t, a.MemoryFeedback)
	assert.Equal(t, "good recall", *a.MemoryFeedback)
	assert.Contains(t, a.Metadata, "raw_analysis")
	assert.Len(t, repo.assessments, 1)
}

func TestAnalyzeTranscript_EmptyTranscript(t *testing.T) {
	repo := newFakeRepository()
	svc := assessment.NewService(repo, &fakeAnalyzer{analysis: healthyAnalysis()}, zerolog.Nop())

	for _, transcript := range []string{"", "   ", "\n\t"} {
		a, err := svc.AnalyzeTranscript(context.Background(), nil, transcript)
		require.Error(t, err)
		assert.Nil(t, a)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	}
	assert.Empty(t, repo.assessments)
}

func TestAnalyzeTranscript_RiskFallback(t *testing.T) {
	tests := []struct {
		name     string
		reported string
		score    float64
		want     assessment.RiskLevel
	}{
		{"bogus level high score", "severe", 8.0, assessment.RiskLow},
		{"bogus level mid score", "unknown", 5.0, assessment.RiskModerate},
		{"bogus level low score", "", 2.0, assessment.RiskHigh},
		{"valid level kept", "high", 9.0, assessment.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := healthyAnalysis()
			analysis.Overall.RiskLevel = tt.reported
			analysis.Overall.Score = tt.score

			svc := assessment.NewService(newFakeRepository(), &fakeAnalyzer{analysis: analysis}, zerolog.Nop())
			a, err := svc.AnalyzeTranscript(context.Background(), nil, "some transcript")
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.RiskLevel)
		})
	}
}

func TestAnalyzeTranscript_AnalyzerFailure(t *testing.T) {
	repo := newFakeRepository()
	failing := &fakeAnalyzer{err: platformerrors.NewError(
		context.Background(),
		platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal,
		"upstream timeout",
		nil,
	)}
	svc := assessment.NewService(repo, failing, zerolog.Nop())

	a, err := svc.AnalyzeTranscript(context.Background(), nil, "some transcript")
	require.Error(t, err)
	assert.Nil(t, a)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Empty(t, repo.assessments)
}

func TestGetAssessment_NotFound(t *testing.T) {
	svc := assessment.NewService(newFakeRepository(), &fakeAnalyzer{analysis: healthyAnalysis()}, zerolog.Nop())

	a, err := svc.GetAssessment(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, a)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestDeleteAssessment(t *testing.T) {
	repo := newFakeRepository()
	svc := assessment.NewService(repo, &fakeAnalyzer{analysis: healthyAnalysis()}, zerolog.Nop())
	ctx := context.Background()

	a, err := svc.AnalyzeTranscript(ctx, nil, "some transcript")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAssessment(ctx, a.ID))
	assert.Empty(t, repo.assessments)

	err = svc.DeleteAssessment(ctx, a.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, assessment.RiskLow, assessment.ClassifyRisk(10))
	assert.Equal(t, assessment.RiskLow, assessment.ClassifyRisk(7))
	assert.Equal(t, assessment.RiskModerate, assessment.ClassifyRisk(6.9))
	assert.Equal(t, assessment.RiskModerate, assessment.ClassifyRisk(4))
	assert.Equal(t, assessment.RiskHigh, assessment.ClassifyRisk(3.9))
	assert.Equal(t, assessment.RiskHigh, assessment.ClassifyRisk(0))
}
