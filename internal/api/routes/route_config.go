package routes

import (
	"MediAssist-Backend/internal/api/handlers"
	"MediAssist-Backend/internal/middleware"
	"MediAssist-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PrescriptionHandler handlers.PrescriptionHandler
	MedicineHandler     handlers.MedicineHandler
	ChatHandler         handlers.ChatHandler
	AlertHandler        handlers.AlertHandler
	DashboardHandler    handlers.DashboardHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Prescriptions()
	c.Medicines()
	c.Chat()
	c.Alerts()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Prescriptions() {
	prescriptions := c.App.Group("/api/v1/prescriptions", c.Middleware.AuthMiddleware(c.JWTService))

	prescriptions.Post("/upload-image", c.PrescriptionHandler.UploadPrescriptionImage)
	prescriptions.Post("/submit-text", c.PrescriptionHandler.SubmitPrescriptionText)
	prescriptions.Get("", c.PrescriptionHandler.GetPrescriptions)
	prescriptions.Get("/:id", c.PrescriptionHandler.GetPrescriptionDetails)
}

func (c *Config) Medicines() {
	medicines := c.App.Group("/api/v1/medicines", c.Middleware.AuthMiddleware(c.JWTService))

	medicines.Post("", c.MedicineHandler.AddMedicine)
	medicines.Get("", c.MedicineHandler.GetMedicines)
	medicines.Put("/:id", c.MedicineHandler.UpdateMedicine)
	medicines.Delete("/:id", c.MedicineHandler.DeleteMedicine)
}

func (c *Config) Chat() {
	chat := c.App.Group("/api/v1/chat", c.Middleware.AuthMiddleware(c.JWTService))

	chat.Post("", c.ChatHandler.Chat)
	chat.Get("/history/:session_id", c.ChatHandler.GetChatHistory)
	chat.Get("/sessions", c.ChatHandler.GetChatSessions)
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/api/v1/alerts", c.Middleware.AuthMiddleware(c.JWTService))

	alerts.Get("", c.AlertHandler.GetAlerts)
	alerts.Put("/:id/read", c.AlertHandler.MarkAlertRead)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))

	dashboard.Get("/stats", c.DashboardHandler.GetDashboardStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
