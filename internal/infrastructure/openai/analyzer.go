// Package openai adapts the OpenAI chat completion API as the transcript
// analyzer behind cognitive assessments.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"caresma-server/internal/config"
	"caresma-server/internal/domain/assessment"
	"caresma-server/internal/utils/platformerrors"
)

const systemPrompt = "You are a clinical neuropsychologist. Provide cognitive assessments in valid JSON format only."

const assessmentPrompt = `You are a clinical neuropsychologist specializing in cognitive assessment and dementia screening. Analyze the following conversation transcript and provide a detailed cognitive assessment based on these four criteria:

1. **Memory** (0-10 scale):
   - Short-term and long-term recall
   - Repetition patterns or perseveration
   - Ability to remember previous topics in the conversation
   - Recognition vs. recall abilities

2. **Language** (0-10 scale):
   - Vocabulary richness and word choice
   - Sentence structure and complexity
   - Word-finding difficulties (anomia)
   - Coherence and relevance of responses
   - Use of empty phrases or filler words

3. **Executive Function** (0-10 scale):
   - Conversation flow and logical sequencing
   - Ability to stay on topic
   - Abstract thinking and reasoning
   - Problem-solving abilities
   - Mental flexibility

4. **Orientation** (0-10 scale):
   - Awareness of time, place, and context
   - Appropriate responses to situational cues
   - Reality testing and judgment

**Scoring Guidelines:**
- 8-10: Normal cognitive function for domain
- 5-7: Mild impairment, warrants monitoring
- 3-4: Moderate impairment, clinical evaluation recommended
- 0-2: Severe impairment, urgent evaluation needed

**Output Format (JSON):**
{
  "memory": {"score": 7.5, "feedback": "Detailed analysis of memory performance..."},
  "language": {"score": 8.0, "feedback": "Detailed analysis of language abilities..."},
  "executive_function": {"score": 6.5, "feedback": "Detailed analysis of executive function..."},
  "orientation": {"score": 9.0, "feedback": "Detailed analysis of orientation..."},
  "overall": {"score": 7.75, "feedback": "Overall cognitive assessment summary...", "risk_level": "low|moderate|high"}
}

**Risk Level Classification:**
- **low**: Average overall score >= 7.0
- **moderate**: Average overall score 4.0-6.9
- **high**: Average overall score < 4.0

Be specific, cite examples from the transcript, and provide actionable insights. Focus on patterns rather than isolated instances.

**TRANSCRIPT TO ANALYZE:**
%s

Provide your assessment in the JSON format specified above.`

// Analyzer calls the OpenAI chat completion API to score transcripts.
type Analyzer struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ assessment.Analyzer = (*Analyzer)(nil)

// NewAnalyzer builds the OpenAI-backed transcript analyzer.
func NewAnalyzer(cfg *config.Config, log zerolog.Logger) *Analyzer {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.OpenAITimeout}

	return &Analyzer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.AssessmentModel,
		log:    log.With().Str("component", "openai-analyzer").Logger(),
	}
}

// Analyze sends the transcript for scoring and parses the JSON result.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) (*assessment.Analysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(assessmentPrompt, transcript),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"openai analysis call failed",
			err,
		)
	}

	if len(resp.Choices) == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"openai returned no choices",
			nil,
		)
	}

	content := resp.Choices[0].Message.Content
	a.log.Debug().
		Str("model", a.model).
		Int("response_length", len(content)).
		Msg("analysis response received")

	analysis, err := parseAnalysis(content)
	if err != nil {
		a.log.Error().Err(err).Str("raw_response", truncate(content, 500)).Msg("failed to parse analysis")
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"invalid analysis response",
			err,
		)
	}

	return analysis, nil
}

// parseAnalysis decodes the model output and verifies every scored domain is
// present.
func parseAnalysis(content string) (*assessment.Analysis, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("decode analysis json: %w", err)
	}

	for _, key := range []string{"memory", "language", "executive_function", "orientation", "overall"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("missing required key in analysis: %s", key)
		}
	}

	var analysis assessment.Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis json: %w", err)
	}

	return &analysis, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
