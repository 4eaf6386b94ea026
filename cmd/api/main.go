package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"temiperi-stocks-backend/internal/handler"
	"temiperi-stocks-backend/internal/middleware"
	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/service"
	"temiperi-stocks-backend/internal/ws"
	"temiperi-stocks-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{},
		&model.Invoice{}, &model.InvoiceItem{},
		&model.Order{}, &model.OrderItem{},
		&model.Expenditure{},
		&model.ChatMessage{}, &model.ChatAttachment{},
		&model.User{},
		&model.InvoiceCounter{},
	)

	// 3. Seed default staff accounts
	seedStaff(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	expenditureRepo := repository.NewExpenditureRepo(db)
	chatRepo := repository.NewChatRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, db, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, db, wsHub)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, db)
	expService := service.NewExpenditureService(expenditureRepo)
	chatService := service.NewChatService(chatRepo, wsHub, uploadDir)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(invService)
	orderHandler := handler.NewOrderHandler(orderService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	expHandler := handler.NewExpenditureHandler(expService)
	chatHandler := handler.NewChatHandler(chatService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Temiperi Stocks Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Attachment storage
	app.Static("/uploads", uploadDir)

	// 7. Routes
	api := app.Group("/temiperi")

	// ============ PUBLIC ROUTES ============
	// The storefront calls these without credentials.
	api.Post("/auth/login", authHandler.Login)

	api.Get("/products", productHandler.GetProducts)
	api.Post("/product-update", productHandler.DeductStock)

	api.Post("/invoice/number", invoiceHandler.GenerateNumber)
	api.Post("/invoice", invoiceHandler.CreateInvoice)
	api.Post("/order", orderHandler.CreateOrder)

	api.Get("/invoices", invoiceHandler.GetInvoices)
	api.Get("/invoice/:id/print", invoiceHandler.PrintInvoice)
	api.Get("/invoice/:id/pdf", invoiceHandler.ExportPDF)
	api.Get("/invoice/:id/whatsapp", invoiceHandler.WhatsAppLink)

	api.Get("/expenditures", expHandler.GetExpenditures)
	api.Post("/expenditure", expHandler.CreateExpenditure)
	api.Put("/expenditure/:id", expHandler.UpdateExpenditure)

	api.Get("/chat-messages", chatHandler.GetMessages)
	api.Post("/chat-messages", chatHandler.PostMessage)
	api.Post("/chat-messages/upload", chatHandler.UploadAttachment)

	// ============ PROTECTED ROUTES ============
	// Destructive actions need a signed-in staff member; deletes are
	// admin-only. Auth is attached per route so the storefront routes
	// above stay open.
	requireAuth := middleware.RequireAuth(userRepo)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)
	api.Post("/products", requireAuth, productHandler.CreateProduct)
	api.Put("/invoice/:id", requireAuth, invoiceHandler.UpdateInvoice)
	api.Delete("/invoice/:id", requireAuth, requireAdmin, invoiceHandler.DeleteInvoice)
	api.Delete("/expenditure/:id", requireAuth, requireAdmin, expHandler.DeleteExpenditure)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "4000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedStaff creates the default admin and seller accounts if they don't exist
func seedStaff(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	seed := []struct {
		email, name, role, password string
	}{
		{"admin@temiperi.com", "Admin", model.RoleAdmin, "admin123"},
		{"seller@temiperi.com", "Seller", model.RoleSeller, "seller123"},
	}

	for _, s := range seed {
		if _, err := userRepo.FindByEmail(s.email); err == nil {
			continue
		}

		user := &model.User{
			Email:    s.email,
			FullName: s.name,
			Role:     s.role,
			IsActive: true,
		}
		if err := user.SetPassword(s.password); err != nil {
			log.Printf("Warning: Failed to hash password for %s: %v", s.email, err)
			continue
		}
		if err := userRepo.Create(user); err != nil {
			log.Printf("Warning: Failed to create user %s: %v", s.email, err)
		} else {
			log.Printf("✅ Staff account created: %s / %s (%s)", s.email, s.password, s.role)
		}
	}
}
