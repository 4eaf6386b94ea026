package handler

import (
	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(s service.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

// GetMessages returns the thread oldest-first; the storefront polls this
// every 15 seconds.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.service.Messages()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return c.JSON(messages)
}

// PostMessage stores a new message. When the request is authenticated the
// sender comes from the token; otherwise the payload's sender snapshot is
// used as-is (the storefront posts without credentials).
func (h *ChatHandler) PostMessage(c *fiber.Ctx) error {
	var msg model.ChatMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if user, ok := c.Locals("user").(*model.User); ok {
		msg.Sender = user.ToSender()
	}

	if err := h.service.Post(&msg); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(msg)
}

// UploadAttachment stores a multipart file and returns the attachment
// metadata to embed in the next message.
func (h *ChatHandler) UploadAttachment(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	attachment, err := h.service.SaveAttachment(file, func(dst string) error {
		return c.SaveFile(file, dst)
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store attachment"})
	}

	return c.Status(201).JSON(attachment)
}
