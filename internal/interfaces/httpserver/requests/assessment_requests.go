package requests

// AnalyzeTranscriptRequest represents a request to assess one transcript.
// SessionID is optional; ad-hoc transcripts are assessed without one.
type AnalyzeTranscriptRequest struct {
	Transcript string  `json:"transcript" binding:"required"`
	SessionID  *string `json:"session_id,omitempty"`
}

// ListAssessmentsQuery carries assessment listing parameters.
type ListAssessmentsQuery struct {
	Limit int `form:"limit"`
}
