package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gym-retention-be/internal/dto"
	"gym-retention-be/internal/entity"
	"gym-retention-be/internal/pkg/logger"
	"gym-retention-be/internal/pkg/mailer"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/pkg/events"
	pktNats "gym-retention-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// AlertDelivery pushes real-time alerts to connected dashboards.
// Implemented by the websocket hub.
type AlertDelivery interface {
	Broadcast(notification entity.Notification)
}

type IAlertConsumerService interface {
	Consume(ctx context.Context) error
}

// alertConsumerService drains the prediction topic and escalates "alto"
// predictions: a notification row, an e-mail, a websocket broadcast and a
// JetStream event.
type alertConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	delivery       AlertDelivery
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAlertConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	delivery AlertDelivery,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAlertConsumerService {
	return &alertConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		delivery:       delivery,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *alertConsumerService) Consume(ctx context.Context) error {
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

func (cs *alertConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PredictionCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("AlertConsumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	prediction, err := uow.ChurnPredictionRepository().GetByID(ctx, payload.PredictionId)
	if err != nil {
		cs.logger.Error("AlertConsumer", "Failed to load prediction", map[string]interface{}{
			"prediction_id": payload.PredictionId,
			"error":         err.Error(),
		})
		msg.Nack() // Retriable
		return
	}
	if prediction == nil {
		cs.logger.Warn("AlertConsumer", "Prediction not found", map[string]interface{}{
			"prediction_id": payload.PredictionId,
		})
		msg.Ack()
		return
	}

	if prediction.RiskLevel != entity.RiskLevelHigh {
		msg.Ack()
		return
	}

	member, err := uow.MemberRepository().GetByID(ctx, prediction.MemberId)
	if err != nil {
		cs.logger.Error("AlertConsumer", "Failed to load member", map[string]interface{}{
			"member_id": prediction.MemberId,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}
	if member == nil {
		msg.Ack()
		return
	}

	notification := entity.Notification{
		Id:       uuid.New(),
		MemberId: member.Id,
		TypeCode: entity.NotificationTypeHighChurnRisk,
		Title:    "Member at high churn risk",
		Message:  fmt.Sprintf("%s was scored at %.0f%% churn probability", member.FullName, prediction.ChurnProbability*100),
		Metadata: map[string]interface{}{
			"prediction_id": prediction.Id.String(),
			"probability":   prediction.ChurnProbability,
			"risk_level":    string(prediction.RiskLevel),
		},
		CreatedAt: time.Now(),
	}

	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		cs.logger.Error("AlertConsumer", "Failed to store notification", map[string]interface{}{
			"member_id": member.Id,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Broadcast(notification)
	}

	// Delivery side effects are best-effort once the row is stored.
	if cs.emailService != nil {
		if err := cs.emailService.SendHighRiskAlert(member.Email, member.FullName, prediction.ChurnProbability); err != nil {
			cs.logger.Warn("AlertConsumer", "Failed to send alert email", map[string]interface{}{
				"member_id": member.Id,
				"error":     err.Error(),
			})
		}
	}

	if cs.eventPublisher != nil {
		evt := events.NewChurnPredictionCreated(prediction.Id, member.Id, prediction.ChurnProbability, string(prediction.RiskLevel))
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("AlertConsumer", "Failed to publish alert event", map[string]interface{}{
				"prediction_id": prediction.Id,
				"error":         err.Error(),
			})
		}
	}

	cs.logger.Info("AlertConsumer", "High risk alert dispatched", map[string]interface{}{
		"member_id":     member.Id,
		"prediction_id": prediction.Id,
	})
	msg.Ack()
}
