package repository

import (
	"temiperi-stocks-backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(msg *model.ChatMessage) error
	FindAll(limit int) ([]model.ChatMessage, error)
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) ChatRepository {
	return &chatRepo{db}
}

func (r *chatRepo) Create(msg *model.ChatMessage) error {
	return r.db.Create(msg).Error
}

// FindAll returns the most recent messages in chronological order so the
// polling client can render them straight into the thread.
func (r *chatRepo) FindAll(limit int) ([]model.ChatMessage, error) {
	q := r.db.Preload("Attachments").Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var messages []model.ChatMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	// Reverse into oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
