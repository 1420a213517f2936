package config

import (
	"os"
	"time"

	"FoodRescue-Backend/internal/api/handlers"
	"FoodRescue-Backend/internal/api/routes"
	"FoodRescue-Backend/internal/middleware"
	"FoodRescue-Backend/internal/utils"
	"FoodRescue-Backend/internal/utils/mailing"
	"FoodRescue-Backend/internal/utils/storage"
	"FoodRescue-Backend/pkg/ai"
	"FoodRescue-Backend/pkg/chat"
	"FoodRescue-Backend/pkg/claim"
	"FoodRescue-Backend/pkg/jwt"
	"FoodRescue-Backend/pkg/listing"
	"FoodRescue-Backend/pkg/organization"
	"FoodRescue-Backend/pkg/ratelimit"
	"FoodRescue-Backend/pkg/rating"
	"FoodRescue-Backend/pkg/sensor"
	"FoodRescue-Backend/pkg/user"

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
		BodyLimit:         storage.MaxUploadSize,
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
		Max:        100,
		Expiration: 1 * time.Second,
	}))

	// uploads
	uploadDir := utils.GetConfig("UPLOAD_DIR")
	var uploads storage.Storage
	if utils.GetConfig("UPLOAD_DRIVER") == "s3" {
		uploads, err = storage.NewAwsS3()
	} else {
		uploads, err = storage.NewLocalStorage(uploadDir)
	}
	if err != nil {
		return nil, err
	}

	// Repository: the database-backed and in-memory stores are interchangeable,
	// picked once at startup.
	var (
		userRepository         user.UserRepository
		listingRepository      listing.ListingRepository
		sensorRepository       sensor.SensorRepository
		claimRepository        claim.ClaimRepository
		organizationRepository organization.OrganizationRepository
		ratingRepository       rating.RatingRepository
	)
	if utils.GetConfig("STORAGE_DRIVER") == "memory" {
		userRepository = user.NewMemoryUserRepository()
		listingRepository = listing.NewMemoryListingRepository()
		sensorRepository = sensor.NewMemorySensorRepository()
		claimRepository = claim.NewMemoryClaimRepository()
		organizationRepository = organization.NewMemoryOrganizationRepository()
		ratingRepository = rating.NewMemoryRatingRepository()
	} else {
		userRepository = user.NewUserRepository(db)
		listingRepository = listing.NewListingRepository(db)
		sensorRepository = sensor.NewSensorRepository(db)
		claimRepository = claim.NewClaimRepository(db)
		organizationRepository = organization.NewOrganizationRepository(db)
		ratingRepository = rating.NewRatingRepository(db)
	}

	// Service
	gateway := ai.NewGeminiGateway(utils.GetConfig("GEMINI_API_KEY"), utils.GetConfig("GEMINI_MODEL"))
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	listingService := listing.NewListingService(listingRepository, uploads)
	sensorService := sensor.NewSensorService(sensorRepository)
	claimService := claim.NewClaimService(claimRepository, listingRepository, mailing.SendMail)
	organizationService := organization.NewOrganizationService(organizationRepository)
	ratingService := rating.NewRatingService(ratingRepository, gateway)
	chatService := chat.NewChatService(gateway)

	// Handler
	chatLimiter := ratelimit.NewLimiter(10, 60*time.Second)
	userHandler := handlers.NewUserHandler(userService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	sensorHandler := handlers.NewSensorHandler(sensorService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	chatHandler := handlers.NewChatHandler(chatService, chatLimiter, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ListingHandler:      listingHandler,
		SensorHandler:       sensorHandler,
		ClaimHandler:        claimHandler,
		OrganizationHandler: organizationHandler,
		RatingHandler:       ratingHandler,
		ChatHandler:         chatHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		UploadDir:           uploadDir,
	}
	routesConfig.Setup()
	return app, nil
}
