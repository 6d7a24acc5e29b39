package repositories

import (
	"github.com/yigit/coachdesk/internal/app/models"
)

// MessageRepository stores messages in memory. Messages cannot be updated.
type MessageRepository struct {
	records *collection[models.Message]
	clock   Clock
}

func NewMessageRepository(clock Clock) *MessageRepository {
	return &MessageRepository{
		records: newCollection(func(m models.Message) int64 { return m.ID }),
		clock:   clock,
	}
}

// Create stores a new message, stamping sentAt and defaulting status to "sent".
func (r *MessageRepository) Create(in models.NewMessage) models.Message {
	return r.records.insert(func(id int64) models.Message {
		return in.Build(id, r.clock())
	})
}

func (r *MessageRepository) GetByID(id int64) (models.Message, bool) {
	return r.records.get(id)
}

func (r *MessageRepository) GetAll() []models.Message {
	return r.records.list()
}

// GetByRecipient filters on recipientType and recipientId together.
func (r *MessageRepository) GetByRecipient(rt models.RecipientType, recipientID int64) []models.Message {
	return r.records.filter(func(m models.Message) bool { return m.MatchesRecipient(rt, recipientID) })
}

func (r *MessageRepository) Delete(id int64) {
	r.records.remove(id)
}
