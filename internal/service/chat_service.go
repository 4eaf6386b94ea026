package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/ws"

	"github.com/google/uuid"
)

// messageHistoryLimit caps how much of the thread a poll returns.
const messageHistoryLimit = 200

var ErrEmptyMessage = errors.New("message needs text or an attachment")

type ChatService interface {
	Messages() ([]model.ChatMessage, error)
	Post(msg *model.ChatMessage) error
	SaveAttachment(file *multipart.FileHeader, save func(dst string) error) (*model.ChatAttachment, error)
}

type chatService struct {
	chatRepo  repository.ChatRepository
	wsHub     *ws.Hub
	uploadDir string
}

func NewChatService(cRepo repository.ChatRepository, hub *ws.Hub, uploadDir string) ChatService {
	return &chatService{
		chatRepo:  cRepo,
		wsHub:     hub,
		uploadDir: uploadDir,
	}
}

func (s *chatService) Messages() ([]model.ChatMessage, error) {
	return s.chatRepo.FindAll(messageHistoryLimit)
}

func (s *chatService) Post(msg *model.ChatMessage) error {
	if msg.Text == "" && len(msg.Attachments) == 0 {
		return ErrEmptyMessage
	}
	if msg.Sender.Name == "" {
		return errors.New("message needs a sender")
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if err := s.chatRepo.Create(msg); err != nil {
		return err
	}

	// Push to connected clients so open chat views update ahead of the
	// next 15s poll.
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "chat_message",
		"message": msg,
	})

	return nil
}

// SaveAttachment stores an uploaded file under the upload dir with a
// collision-free name and returns the attachment metadata the message will
// carry. The save callback is fiber's ctx.SaveFile.
func (s *chatService) SaveAttachment(file *multipart.FileHeader, save func(dst string) error) (*model.ChatAttachment, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, err
	}

	stored := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	if err := save(filepath.Join(s.uploadDir, stored)); err != nil {
		return nil, err
	}

	return &model.ChatAttachment{
		Name: file.Filename,
		Size: file.Size,
		Type: file.Header.Get("Content-Type"),
		URL:  "/uploads/" + stored,
	}, nil
}
