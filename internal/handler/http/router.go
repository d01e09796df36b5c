package http

import (
	"log/slog"
	"os"

	"github.com/bizdesk/bizdesk-backend-go/internal/config"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/middleware"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth           AuthHandler
	User           UserHandler
	ClientCompany  ClientCompanyHandler
	Project        ProjectHandler
	Service        ServiceHandler
	ServiceRequest ServiceRequestHandler
	Message        MessageHandler
	Stats          StatsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bizdesk-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/logout", h.Auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.AccessAuth()))
			r.Use(middleware.AuthRequired(authService))
			r.Get("/profile", h.Auth.Profile)
		})
	})

	// Everything below requires an access token.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.AccessAuth()))
		r.Use(middleware.AuthRequired(authService))

		r.Route("/users", func(r chi.Router) {
			r.Patch("/me", h.User.UpdateMe)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.GetByID)
				r.Patch("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/{id}/projects", h.ClientCompany.Projects)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.ClientCompany.List)
				r.Post("/", h.ClientCompany.Create)
				r.Get("/{id}", h.ClientCompany.GetByID)
				r.Patch("/{id}", h.ClientCompany.Update)
				r.Delete("/{id}", h.ClientCompany.Delete)
			})
		})

		r.Route("/services", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleClient))
				r.Get("/", h.Service.List)
				r.Get("/{id}", h.Service.GetByID)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Service.Create)
				r.Patch("/{id}", h.Service.Update)
				r.Delete("/{id}", h.Service.Delete)
			})
		})

		r.Route("/service-requests", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleClient))
				r.Get("/", h.ServiceRequest.List)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleClient))
				r.Post("/", h.ServiceRequest.Create)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Patch("/{id}/approve", h.ServiceRequest.Approve)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Project.List)
			r.Get("/{id}", h.Project.GetByID)
			r.Patch("/{id}/status", h.Project.UpdateStatus)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Project.Create)
				r.Patch("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
				r.Post("/{id}/assign", h.Project.Assign)
				r.Delete("/{id}/assign/{employeeId}", h.Project.Unassign)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(user.RoleEmployee))
			r.Get("/employees/me/projects", h.Project.List)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", h.Message.Send)
			r.Get("/partners", h.Message.Partners)
			r.Get("/conversation/{peerId}", h.Message.Conversation)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/admin/stats", h.Stats.AdminStats)
		})
	})

	return r
}
