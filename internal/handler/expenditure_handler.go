package handler

import (
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/service"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/gofiber/fiber/v2"
)

type ExpenditureHandler struct {
	service service.ExpenditureService
}

func NewExpenditureHandler(s service.ExpenditureService) *ExpenditureHandler {
	return &ExpenditureHandler{service: s}
}

// GetExpenditures lists expenses under ?filter= (all/today/yesterday/
// thisWeek/thisMonth/custom with ?start=&end=), ?category= and ?q=,
// together with the filtered running total. Dates are YYYY-MM-DD.
func (h *ExpenditureHandler) GetExpenditures(c *fiber.Ctx) error {
	filter := service.ExpenditureFilter{
		Bucket:   timeband.Bucket(c.Query("filter", string(timeband.All))),
		Category: model.ExpenditureCategory(c.Query("category")),
		Query:    c.Query("q"),
	}
	if start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local); err == nil {
		filter.Start = &start
	}
	if end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local); err == nil {
		filter.End = &end
	}

	exps, total, err := h.service.List(filter, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenditures"})
	}

	return c.JSON(fiber.Map{
		"expenditures": exps,
		"total":        total,
	})
}

func (h *ExpenditureHandler) CreateExpenditure(c *fiber.Ctx) error {
	var exp model.Expenditure
	if err := c.BodyParser(&exp); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&exp); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Expenditure added", "data": exp})
}

func (h *ExpenditureHandler) UpdateExpenditure(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expenditure ID"})
	}

	var exp model.Expenditure
	if err := c.BodyParser(&exp); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &exp)
	if err != nil {
		status := 400
		if err == service.ErrExpenditureNotFound {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Expenditure updated", "data": updated})
}

func (h *ExpenditureHandler) DeleteExpenditure(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expenditure ID"})
	}

	if err := h.service.Delete(id); err != nil {
		status := 400
		if err == service.ErrExpenditureNotFound {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Expenditure deleted"})
}
