package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender is the denormalized sender snapshot stored with every message,
// so the history survives user edits.
type ChatSender struct {
	ID     string `gorm:"column:sender_id;type:varchar(255)" json:"id"`
	Name   string `gorm:"column:sender_name;type:varchar(255)" json:"name" validate:"required"`
	Role   string `gorm:"column:sender_role;type:varchar(50)" json:"role"`
	Avatar string `gorm:"column:sender_avatar;type:text" json:"avatar"`
}

type ChatAttachment struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MessageID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Size      int64     `json:"size"`
	Type      string    `gorm:"type:varchar(100)" json:"type"` // MIME type
	URL       string    `gorm:"type:text" json:"url"`
}

type ChatMessage struct {
	BaseModel
	Sender      ChatSender       `gorm:"embedded" json:"sender"`
	Text        string           `gorm:"type:text" json:"text"`
	Timestamp   time.Time        `gorm:"index;not null" json:"timestamp"`
	Attachments []ChatAttachment `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"attachments"`
}
