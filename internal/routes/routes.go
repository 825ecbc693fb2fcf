package routes

import (
	"time"

	"github.com/ManifoldAI-Apps/triuno-app/internal/config"
	"github.com/ManifoldAI-Apps/triuno-app/internal/handlers"
	"github.com/ManifoldAI-Apps/triuno-app/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Connection   *handlers.ConnectionHandler
	Message      *handlers.MessageHandler
	Gratitude    *handlers.GratitudeHandler
	Task         *handlers.TaskHandler
	Event        *handlers.EventHandler
	Notification *handlers.NotificationHandler
	Content      *handlers.ContentHandler
	Admin        *handlers.AdminHandler
	Feed         *handlers.FeedHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", handlers.Health)
	api.Get("/commitment", h.Content.Commitment)
	api.Get("/wisdom", h.Content.Wisdom)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/confirm", h.Auth.ConfirmEmail)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	// Protected routes (JWT required) - apply middleware to individual
	// routes so it never shadows the public endpoints above.
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, h.Auth.Logout)

	api.Get("/me", jwt, h.User.Me)
	api.Patch("/me", jwt, h.User.UpdateProfile)
	api.Post("/me/commitment", jwt, h.User.AcceptCommitment)
	api.Get("/me/stats", jwt, h.User.CategoryStats)
	api.Get("/navigation", jwt, h.User.Navigation)

	api.Get("/users", jwt, h.User.List)
	api.Get("/users/:id", jwt, h.User.GetByID)
	api.Get("/ranking", jwt, h.User.Ranking)

	api.Post("/connections/request", jwt, h.Connection.Request)
	api.Post("/connections/accept", jwt, h.Connection.Accept)

	api.Post("/messages", jwt, h.Message.Send)
	api.Get("/messages/unread", jwt, h.Message.UnreadCount)
	api.Get("/messages/guardian", jwt, h.Message.Guardian)
	api.Get("/messages/:id", jwt, h.Message.Conversation)
	api.Put("/messages/:id/read", jwt, h.Message.MarkRead)

	api.Get("/posts", jwt, h.Gratitude.Feed)
	api.Post("/posts", jwt, h.Gratitude.CreatePost)
	api.Post("/posts/:id/comments", jwt, h.Gratitude.AddComment)
	api.Post("/posts/:id/like", jwt, h.Gratitude.ToggleLike)
	api.Get("/posts/liked", jwt, h.Gratitude.LikedPosts)

	api.Get("/tasks", jwt, h.Task.ListForDay)
	api.Put("/tasks/:id/toggle", jwt, h.Task.Toggle)

	api.Get("/events", jwt, h.Event.List)
	api.Post("/events/:id/attend", jwt, h.Event.Attend)
	api.Get("/events/attended", jwt, h.Event.Attended)

	api.Get("/notifications", jwt, h.Notification.List)
	api.Put("/notifications/read", jwt, h.Notification.MarkAllRead)
	api.Get("/notifications/unread", jwt, h.Notification.UnreadCount)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Put("/users/:id/status", h.Admin.SetUserStatus)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/tasks", h.Admin.ListTaskTemplates)
	admin.Post("/tasks", h.Admin.ForgeTask)
	admin.Put("/tasks/:id", h.Admin.UpdateTask)
	admin.Delete("/tasks/:id", h.Admin.DeleteTask)
	admin.Post("/events", h.Admin.CreateEvent)
	admin.Put("/wisdom", h.Admin.SetWisdom)
	admin.Post("/broadcast", h.Admin.Broadcast)

	// Live feed stream
	app.Use("/ws/feed", middleware.JWTProtected(cfg), h.Feed.Upgrade)
	app.Get("/ws/feed", h.Feed.Stream())
}
