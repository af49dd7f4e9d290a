package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rtrack/rtrack-backend-go/internal/config"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/middleware"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	db *database.DB,
	jwtService jwt.Service,
	authHandler *AuthHandler,
	employeeHandler *EmployeeHandler,
	attendanceHandler *AttendanceHandler,
	complianceHandler *ComplianceHandler,
	exceptionHandler *ExceptionHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rtrack-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"message": "Workforce Compliance Tracker API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.InternalServerError(w, "Database unavailable")
			return
		}
		response.OK(w, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Get("/me", authHandler.Me)
		})
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		// Admin only
		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/facets", employeeHandler.Facets)
			r.Post("/upload", employeeHandler.Upload)
			r.Get("/{employee_id}", employeeHandler.Get)
			r.Patch("/{employee_id}", employeeHandler.Update)
			r.Delete("/{employee_id}", employeeHandler.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/upload", attendanceHandler.Upload)
				r.Get("/last-upload", attendanceHandler.LastUpload)
			})
		})

		r.Route("/compliance", func(r chi.Router) {
			r.Get("/", complianceHandler.GetWeekly)
			r.Get("/monthly", complianceHandler.GetMonthly)
			r.Get("/quarterly", complianceHandler.GetQuarterly)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/monthly/calculate", complianceHandler.CalculateMonthly)
				r.Post("/quarterly/calculate", complianceHandler.CalculateQuarterly)
				r.Delete("/database/clean", complianceHandler.CleanDatabase)
			})
		})

		// Admin only
		r.Route("/exceptions", func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/", exceptionHandler.List)
			r.Post("/", exceptionHandler.Create)
			r.Post("/populate", exceptionHandler.Populate)
			r.Get("/{id}", exceptionHandler.Get)
			r.Put("/{id}", exceptionHandler.Update)
			r.Delete("/{id}", exceptionHandler.Delete)
		})
	})

	return r
}
