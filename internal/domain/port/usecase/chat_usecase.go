package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
)

// Source tells which path produced an answer
type Source string

const (
	// SourceRules means the local keyword rules answered
	SourceRules Source = "rules"
	// SourceBackend means the hosted text backend answered
	SourceBackend Source = "backend"
)

// Verdict is the outcome of a gold-relatedness check.
// BackendErr is set only when a backend was tried, failed, and the rules answered instead.
type Verdict struct {
	GoldRelated bool
	Source      Source
	BackendErr  error
}

// Reply is generated chat text with the same fallback bookkeeping as Verdict
type Reply struct {
	Text       string
	Source     Source
	BackendErr error
}

// IntentClassifier decides what a chat message is about
type IntentClassifier interface {
	// IsGoldRelated never fails; backend problems are reported inside the Verdict
	IsGoldRelated(ctx context.Context, message string) Verdict
	// IsPurchaseConsent reports whether the message agrees to buy
	IsPurchaseConsent(message string) bool
}

// ResponseGenerator produces the reply text for a chat message
type ResponseGenerator interface {
	// Generate never fails; backend problems are reported inside the Reply
	Generate(ctx context.Context, message string, goldRelated bool) Reply
}

// ChatUseCase answers chat turns
type ChatUseCase interface {
	Respond(ctx context.Context, turn entity.ChatTurn) entity.ChatReply
}
