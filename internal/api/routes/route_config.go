package routes

import (
	"FoodRescue-Backend/internal/api/handlers"
	"FoodRescue-Backend/internal/middleware"
	"FoodRescue-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ListingHandler      handlers.ListingHandler
	SensorHandler       handlers.SensorHandler
	ClaimHandler        handlers.ClaimHandler
	OrganizationHandler handlers.OrganizationHandler
	RatingHandler       handlers.RatingHandler
	ChatHandler         handlers.ChatHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	UploadDir           string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.FoodListings()
	c.SensorData()
	c.Claims()
	c.Organizations()
	c.Assistant()
	c.Uploads()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) FoodListings() {
	listings := c.App.Group("/api/food-listings")
	{
		listings.Get("", c.ListingHandler.GetListings)
		listings.Get("/:id", c.ListingHandler.GetListingByID)
		listings.Post("", c.ListingHandler.CreateListing)
		listings.Patch("/:id", c.ListingHandler.UpdateListing)
		listings.Delete("/:id", c.ListingHandler.DeleteListing)
	}
}

func (c *Config) SensorData() {
	c.App.Get("/api/sensor-data/:listingId", c.SensorHandler.GetSensorData)
	c.App.Post("/api/sensor-data", c.SensorHandler.CreateSensorData)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/claims")
	{
		claims.Post("", c.ClaimHandler.CreateClaim)
		claims.Get("/:listingId", c.ClaimHandler.GetClaimsForListing)
		claims.Patch("/:id", c.ClaimHandler.UpdateClaim)
	}
}

func (c *Config) Organizations() {
	orgs := c.App.Group("/api/organizations")
	{
		orgs.Get("", c.OrganizationHandler.GetOrganizations)
		orgs.Get("/:id", c.OrganizationHandler.GetOrganizationByID)
		orgs.Post("", c.OrganizationHandler.CreateOrganization)
		orgs.Get("/:id/supplier-ratings", c.RatingHandler.GetRatingsForOrganization)
	}
	c.App.Post("/api/supplier-ratings", c.RatingHandler.CreateRating)
}

func (c *Config) Assistant() {
	c.App.Post("/api/chat", c.ChatHandler.Chat)
	c.App.Post("/api/detect-food", c.ChatHandler.DetectFood)
}

// Uploads serves locally stored images back to any origin.
func (c *Config) Uploads() {
	c.App.Static("/uploads", c.UploadDir)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
