package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/models"
	"github.com/yigit/coachdesk/internal/app/repositories"
	"github.com/yigit/coachdesk/internal/pkg/apperrors"
	"github.com/yigit/coachdesk/internal/pkg/validation"
	"github.com/yigit/coachdesk/internal/pkg/websocket"
)

// NotificationMessageCreated is published for every new message that names
// a recipient.
const NotificationMessageCreated = "message.created"

// MessageService defines the interface for message operations.
// Messages are created and deleted, never updated.
type MessageService interface {
	SendMessage(ctx context.Context, in models.NewMessage) (models.Message, error)
	GetMessageByID(ctx context.Context, id int64) (models.Message, error)
	GetAllMessages(ctx context.Context) []models.Message
	GetMessagesByRecipient(ctx context.Context, rt models.RecipientType, recipientID int64) []models.Message
	DeleteMessage(ctx context.Context, id int64)
}

type messageServiceImpl struct {
	messageRepo *repositories.MessageRepository
	notifier    Notifier
	logger      zerolog.Logger
}

func NewMessageService(messageRepo *repositories.MessageRepository, notifier Notifier, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SendMessage stores the message and pushes it to live subscribers of its
// recipient. recipientId is not checked against any collection.
func (s *messageServiceImpl) SendMessage(ctx context.Context, in models.NewMessage) (models.Message, error) {
	if err := validation.Struct(in); err != nil {
		return models.Message{}, err
	}

	msg := s.messageRepo.Create(in)
	s.logger.Info().
		Int64("messageID", msg.ID).
		Str("recipientType", string(msg.RecipientType)).
		Msg("Message sent")

	if s.notifier != nil && msg.RecipientID != nil {
		s.notifier.Publish(&websocket.Notification{
			Type:      NotificationMessageCreated,
			Topic:     websocket.Topic(string(msg.RecipientType), *msg.RecipientID),
			Data:      msg,
			Timestamp: msg.SentAt,
		})
	}
	return msg, nil
}

func (s *messageServiceImpl) GetMessageByID(ctx context.Context, id int64) (models.Message, error) {
	msg, ok := s.messageRepo.GetByID(id)
	if !ok {
		return models.Message{}, apperrors.ErrMessageNotFound
	}
	return msg, nil
}

func (s *messageServiceImpl) GetAllMessages(ctx context.Context) []models.Message {
	return s.messageRepo.GetAll()
}

func (s *messageServiceImpl) GetMessagesByRecipient(ctx context.Context, rt models.RecipientType, recipientID int64) []models.Message {
	return s.messageRepo.GetByRecipient(rt, recipientID)
}

func (s *messageServiceImpl) DeleteMessage(ctx context.Context, id int64) {
	s.messageRepo.Delete(id)
	s.logger.Info().Int64("messageID", id).Msg("Message deleted")
}
