package models

import "time"

// Message is a notice sent to a student, parent, batch or teacher.
// RecipientID is not checked against any collection.
type Message struct {
	ID            int64         `json:"id" example:"1"`
	Subject       *string       `json:"subject" example:"Holiday notice"`
	Content       *string       `json:"content"`
	RecipientType RecipientType `json:"recipientType" example:"batch" enums:"student,parent,batch,teacher"`
	RecipientID   *int64        `json:"recipientId" example:"3"`
	SentAt        time.Time     `json:"sentAt"`
	SentBy        *string       `json:"sentBy" example:"admin"`
	Type          *string       `json:"type" example:"announcement"`
	Status        string        `json:"status" example:"sent"`
}

func (m Message) Clone() Message {
	m.Subject = clonePtr(m.Subject)
	m.Content = clonePtr(m.Content)
	m.RecipientID = clonePtr(m.RecipientID)
	m.SentBy = clonePtr(m.SentBy)
	m.Type = clonePtr(m.Type)
	return m
}

type NewMessage struct {
	Subject       *string       `json:"subject"`
	Content       *string       `json:"content"`
	RecipientType RecipientType `json:"recipientType" validate:"required,oneof=student parent batch teacher"`
	RecipientID   *int64        `json:"recipientId" validate:"omitempty,gt=0"`
	SentBy        *string       `json:"sentBy"`
	Type          *string       `json:"type"`
	Status        *string       `json:"status"`
}

func (n NewMessage) Build(id int64, now time.Time) Message {
	return Message{
		ID:            id,
		Subject:       n.Subject,
		Content:       n.Content,
		RecipientType: n.RecipientType,
		RecipientID:   n.RecipientID,
		SentAt:        now,
		SentBy:        n.SentBy,
		Type:          n.Type,
		Status:        stringOr(n.Status, MessageStatusSent),
	}
}

// MatchesRecipient reports whether m was addressed to the given recipient.
func (m Message) MatchesRecipient(rt RecipientType, id int64) bool {
	return m.RecipientType == rt && m.RecipientID != nil && *m.RecipientID == id
}
