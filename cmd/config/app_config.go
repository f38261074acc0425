package config

import (
	"MediAssist-Backend/internal/api/handlers"
	"MediAssist-Backend/internal/api/routes"
	"MediAssist-Backend/internal/middleware"
	"MediAssist-Backend/internal/utils"
	"MediAssist-Backend/internal/utils/storage"
	"MediAssist-Backend/pkg/alert"
	"MediAssist-Backend/pkg/chat"
	"MediAssist-Backend/pkg/dashboard"
	"MediAssist-Backend/pkg/gemini"
	"MediAssist-Backend/pkg/jwt"
	"MediAssist-Backend/pkg/medicine"
	"MediAssist-Backend/pkg/openfda"
	"MediAssist-Backend/pkg/prescription"
	"MediAssist-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient := gemini.NewClient(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
		utils.GetConfig("GEMINI_VISION_MODEL"),
	)
	fdaClient := openfda.NewClient(utils.GetConfig("FDA_API_URL"))

	// Repository
	userRepository := user.NewUserRepository(db)
	prescriptionRepository := prescription.NewPrescriptionRepository(db)
	medicineRepository := medicine.NewMedicineRepository(db)
	chatRepository := chat.NewChatRepository(db)
	alertRepository := alert.NewAlertRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	alertService := alert.NewAlertService(alertRepository, userRepository)
	conflictChecker := prescription.NewConflictChecker(fdaClient)
	prescriptionService := prescription.NewPrescriptionService(
		prescriptionRepository,
		conflictChecker,
		geminiClient,
		alertService,
		s3,
	)
	medicineService := medicine.NewMedicineService(medicineRepository, alertService)
	chatService := chat.NewChatService(chatRepository, medicineRepository, geminiClient)
	dashboardService := dashboard.NewDashboardService(
		prescriptionRepository,
		medicineRepository,
		alertRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService, validator)
	medicineHandler := handlers.NewMedicineHandler(medicineService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PrescriptionHandler: prescriptionHandler,
		MedicineHandler:     medicineHandler,
		ChatHandler:         chatHandler,
		AlertHandler:        alertHandler,
		DashboardHandler:    dashboardHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
