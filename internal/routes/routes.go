package routes

import (
	"time"

	"github.com/friendmatch/backend/internal/config"
	"github.com/friendmatch/backend/internal/handlers"
	"github.com/friendmatch/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	interestHandler *handlers.InterestHandler,
	profileHandler *handlers.ProfileHandler,
	discoverHandler *handlers.DiscoverHandler,
	friendHandler *handlers.FriendHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/interests", interestHandler.ListInterests)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Everything below requires a principal.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/profile/:id", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	protected.Get("/discover", discoverHandler.Discover)

	protected.Post("/friend-request", friendHandler.SendRequest)
	protected.Get("/friend-requests", friendHandler.ListPendingRequests)
	protected.Post("/friend-request/respond", friendHandler.Respond)
	protected.Get("/friends", friendHandler.ListFriends)
	protected.Delete("/friends/:id", friendHandler.RemoveFriend)
}
