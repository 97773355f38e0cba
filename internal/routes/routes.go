package routes

import (
	"time"

	"github.com/comedyconnector/backend/internal/config"
	"github.com/comedyconnector/backend/internal/handlers"
	"github.com/comedyconnector/backend/internal/middleware"
	"github.com/comedyconnector/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	users *services.UserService,
	healthHandler *handlers.HealthHandler,
	searchHandler *handlers.SearchHandler,
	profileHandler *handlers.ProfileHandler,
	teamHandler *handlers.TeamHandler,
	approvalHandler *handlers.ApprovalHandler,
	contactHandler *handlers.ContactHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public discovery and directory pages (no JWT)
	api.Get("/search", searchHandler.Search)
	api.Get("/performers/:slug", profileHandler.PublicPerformer)
	api.Get("/coaches/:slug", profileHandler.PublicCoach)
	api.Get("/teams/:slug", teamHandler.Get)

	// Identity provider webhooks (shared-secret auth, no JWT)
	webhooks := api.Group("/webhooks")
	webhooks.Post("/identity-signup", webhookHandler.HandleIdentitySignup)

	// Everything below requires a valid JWT; LoadUser resolves (and lazily
	// creates) the local user row from the token's identity claims.
	authed := []fiber.Handler{middleware.JWTProtected(cfg), middleware.LoadUser(users)}

	api.Get("/profile", append(authed, profileHandler.Me)...)
	api.Put("/profile", append(authed, profileHandler.UpsertPersonal)...)
	api.Put("/profile/performer", append(authed, profileHandler.UpsertPerformer)...)
	api.Delete("/profile/performer", append(authed, profileHandler.RemovePerformer)...)
	api.Put("/profile/coach", append(authed, profileHandler.UpsertCoach)...)
	api.Delete("/profile/coach", append(authed, profileHandler.RemoveCoach)...)
	api.Get("/profiles/search", append(authed, profileHandler.SearchProfiles)...)

	// Self-managed team affiliations; unregistered names spawn stub teams
	api.Get("/profile/teams", append(authed, profileHandler.MyTeams)...)
	api.Post("/profile/teams", append(authed, profileHandler.JoinTeam)...)
	api.Delete("/profile/teams/:id", append(authed, profileHandler.LeaveTeam)...)

	api.Post("/teams", append(authed, teamHandler.Create)...)
	api.Put("/teams/:slug", append(authed, teamHandler.Update)...)
	api.Post("/teams/:slug/claim", append(authed, teamHandler.Claim)...)
	api.Post("/teams/:slug/members", append(authed, teamHandler.AddMember)...)
	api.Delete("/teams/:slug/members/:id", append(authed, teamHandler.RemoveMember)...)
	api.Post("/teams/:slug/coaches", append(authed, teamHandler.AddCoach)...)
	api.Delete("/teams/:slug/coaches/:id", append(authed, teamHandler.RemoveCoach)...)

	api.Get("/approvals", append(authed, approvalHandler.Inbox)...)
	api.Post("/approvals/:id", append(authed, approvalHandler.Decide)...)

	// Contact relay carries its own stricter limit: 10 req/min per IP
	contact := api.Group("/contact", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	contact.Post("/", append(authed, contactHandler.Send)...)
}
