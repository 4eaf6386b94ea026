package handler

import (
	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/pagination"
	"temiperi-stocks-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

// Helper to parse UUID from string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// GetProducts lists stock, filtered by ?category= and ?q=. When ?page= is
// present the response also carries the pagination meta the stock table
// renders (7 rows per page, ellipsis page strip).
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	query := c.Query("q")

	products, err := h.service.GetProducts(category, query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}

	categories, err := h.service.GetCategories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}

	resp := fiber.Map{
		"products":   products,
		"categories": categories,
	}

	if page := c.QueryInt("page", 0); page > 0 {
		totalPages := pagination.TotalPages(len(products), pagination.DefaultPageSize)
		page = pagination.Clamp(page, totalPages)
		resp["products"] = pagination.Slice(products, page, pagination.DefaultPageSize)
		resp["pagination"] = fiber.Map{
			"page":        page,
			"per_page":    pagination.DefaultPageSize,
			"total":       len(products),
			"total_pages": totalPages,
			"pages":       pagination.PageNumbers(totalPages, page),
		}
	}

	return c.JSON(resp)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// DeductStock handles the storefront's post-order per-item deduction call.
func (h *ProductHandler) DeductStock(c *fiber.Ctx) error {
	var req struct {
		ProductID        uuid.UUID `json:"productId"`
		QuantityToDeduct int       `json:"quantityToDeduct"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.DeductStock(req.ProductID, req.QuantityToDeduct)
	if err != nil {
		status := 400
		if err == service.ErrProductNotFound {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "product": product})
}
