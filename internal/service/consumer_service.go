package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"prompt-tutor-be/internal/constant"
	"prompt-tutor-be/internal/repository/specification"
	"prompt-tutor-be/internal/repository/unitofwork"
	"prompt-tutor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService handles turn bookkeeping off the request path: naming a
// session after its first prompt and recording token usage.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.TurnProcessed
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Turn processed for session %s: phase=%s confidence=%.1f tokens=%d",
		payload.SessionId, payload.Phase, payload.Confidence, payload.TokensUsed)

	// Only the first real turn names the session.
	if payload.IterationCount != 1 || strings.TrimSpace(payload.UserPrompt) == "" {
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: payload.SessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to load session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}
	if sess == nil {
		// Session deleted between turn and event delivery. Nothing to do.
		msg.Ack()
		return
	}

	if sess.Title == constant.DefaultSessionTitle || sess.Title == "" {
		sess.Title = sessionTitle(payload.UserPrompt)
		if err := uow.ChatSessionRepository().Update(ctx, sess); err != nil {
			log.Printf("[ERROR] Failed to rename session %s: %v", payload.SessionId, err)
			msg.Nack()
			return
		}
	}

	msg.Ack()
}

func sessionTitle(prompt string) string {
	title := strings.TrimSpace(prompt)
	title = strings.ReplaceAll(title, "\n", " ")
	if len(title) > constant.SessionTitleMaxLen {
		title = title[:constant.SessionTitleMaxLen] + "..."
	}
	return title
}
