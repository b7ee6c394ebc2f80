package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/gold-advisor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/usecase"
)

// ConsentGuidance is the fixed reply to a message agreeing to buy
const ConsentGuidance = "Great choice! To buy digital gold, send a purchase request with your user ID, " +
	"name, email and the amount you would like to invest. Your gold is credited instantly " +
	"and held in secure vaults."

var newUserID = func() string { return uuid.NewString() }

// Service answers chat turns: consent check, then classification, then generation
type Service struct {
	classifier usecase.IntentClassifier
	generator  usecase.ResponseGenerator
	logger     coreport.Logger
}

// NewChatService creates a chat service
func NewChatService(
	classifier usecase.IntentClassifier,
	generator usecase.ResponseGenerator,
	logger coreport.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		generator:  generator,
		logger:     logger,
	}
}

// Respond builds the reply for one chat turn. It never fails.
func (s *Service) Respond(ctx context.Context, turn entity.ChatTurn) entity.ChatReply {
	userID := strings.TrimSpace(turn.UserID)
	if userID == "" {
		userID = newUserID()
	}

	if s.classifier.IsPurchaseConsent(turn.Message) {
		s.logger.Info("Purchase consent received", map[string]any{
			"user_id": userID,
		})
		return entity.ChatReply{
			ResponseText:       ConsentGuidance,
			IsGoldRelated:      true,
			UserID:             userID,
			PurchaseEncouraged: true,
		}
	}

	verdict := s.classifier.IsGoldRelated(ctx, turn.Message)
	reply := s.generator.Generate(ctx, turn.Message, verdict.GoldRelated)

	s.logger.Debug("Chat reply generated", map[string]any{
		"user_id":           userID,
		"gold_related":      verdict.GoldRelated,
		"classified_by":     verdict.Source,
		"generated_by":      reply.Source,
		"classifier_failed": verdict.BackendErr != nil,
		"generator_failed":  reply.BackendErr != nil,
	})

	return entity.ChatReply{
		ResponseText:       reply.Text,
		IsGoldRelated:      verdict.GoldRelated,
		UserID:             userID,
		PurchaseEncouraged: verdict.GoldRelated,
	}
}

var _ usecase.ChatUseCase = (*Service)(nil)
