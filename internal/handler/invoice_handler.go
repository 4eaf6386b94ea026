package handler

import (
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/pagination"
	"temiperi-stocks-backend/internal/printview"
	"temiperi-stocks-backend/internal/service"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// GenerateNumber issues the next invoice number for a new order draft.
func (h *InvoiceHandler) GenerateNumber(c *fiber.Ctx) error {
	number, err := h.service.GenerateNumber()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate invoice number"})
	}
	return c.JSON(fiber.Map{"invoiceNumber": number})
}

func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var invoice model.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&invoice); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": invoice})
}

// GetInvoices lists invoices newest first under the ?filter= time bucket
// (all/today/yesterday/thisWeek/past) ANDed with the ?q= text filter, plus
// the running total and its caption. ?page= adds pagination meta.
func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	bucket := timeband.Bucket(c.Query("filter", string(timeband.All)))
	query := c.Query("q")

	invoices, total, err := h.service.List(bucket, query, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch invoices"})
	}

	resp := fiber.Map{
		"data":       invoices,
		"total":      total,
		"totalLabel": h.service.TotalLabel(bucket),
	}

	if page := c.QueryInt("page", 0); page > 0 {
		totalPages := pagination.TotalPages(len(invoices), pagination.DefaultPageSize)
		page = pagination.Clamp(page, totalPages)
		resp["data"] = pagination.Slice(invoices, page, pagination.DefaultPageSize)
		resp["pagination"] = fiber.Map{
			"page":        page,
			"per_page":    pagination.DefaultPageSize,
			"total":       len(invoices),
			"total_pages": totalPages,
			"pages":       pagination.PageNumbers(totalPages, page),
		}
	}

	return c.JSON(resp)
}

func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var invoice model.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &invoice)
	if err != nil {
		status := 400
		if err == service.ErrInvoiceNotFound {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Invoice updated", "data": updated})
}

func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	if err := h.service.Delete(id); err != nil {
		status := 400
		if err == service.ErrInvoiceNotFound {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}

// PrintInvoice serves the self-contained HTML document the storefront
// writes into its print window.
func (h *InvoiceHandler) PrintInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.service.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := printview.RenderHTML(invoice)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render invoice"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportPDF streams the A4 PDF used as the WhatsApp attachment.
func (h *InvoiceHandler) ExportPDF(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.service.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	pdf, err := printview.RenderPDF(invoice)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Invoice-`+invoice.InvoiceNumber+`.pdf"`)
	return c.Send(pdf)
}

// WhatsAppLink builds the wa.me deep link for sharing an invoice with the
// customer phone number given in ?phone=.
func (h *InvoiceHandler) WhatsAppLink(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.service.Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	link, err := printview.WhatsAppLink(invoice, c.Query("phone"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Please enter a phone number"})
	}

	return c.JSON(fiber.Map{
		"url":     link,
		"message": printview.WhatsAppMessage(invoice),
	})
}
