package handlers

import (
	"github.com/rs/zerolog"

	"caresma-server/internal/domain/assessment"
	"caresma-server/internal/domain/message"
	"caresma-server/internal/domain/session"
	"caresma-server/internal/infrastructure/avatar"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Message    *MessageHandler
	Session    *SessionHandler
	Assessment *AssessmentHandler
	Avatar     *AvatarHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	messageService message.Service,
	sessionService session.Service,
	assessmentService assessment.Service,
	avatarClient *avatar.Client,
	log zerolog.Logger,
) *Provider {
	p := &Provider{
		Message:    NewMessageHandler(messageService, log),
		Session:    NewSessionHandler(sessionService, log),
		Assessment: NewAssessmentHandler(assessmentService, log),
	}
	if avatarClient != nil {
		p.Avatar = NewAvatarHandler(avatarClient, log)
	}
	return p
}
