package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hirepath/careers-backend-go/internal/handler/http/middleware"
	"github.com/hirepath/careers-backend-go/internal/pkg/jwt"
	"github.com/hirepath/careers-backend-go/internal/pkg/redis"
)

type RouterDeps struct {
	JWTService        jwt.Service
	RedisClient       *redis.Client
	FrontendURL       string
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	LocationHandler   LocationHandler
	SettingsHandler   SettingsHandler
	JobHandler        JobHandler
	LeaveHandler      LeaveHandler
	ReportHandler     ReportHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "careers-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Credential endpoints carry a tighter rate limit than the rest
			// of the API.
			r.Use(middleware.RateLimit(deps.RedisClient, logger, 10, time.Minute))

			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", deps.AuthHandler.OAuthCallbackGoogle)
				})
			})
		})

		// Public careers surface.
		r.Route("/jobs", func(r chi.Router) {
			r.Use(middleware.RateLimit(deps.RedisClient, logger, 120, time.Minute))

			r.Get("/", deps.JobHandler.ListOpenPostings)
			r.Get("/{id}", deps.JobHandler.GetPosting)
		})

		// Requires authentication.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.RateLimit(deps.RedisClient, logger, 60, time.Minute))

			// Applicant surface.
			r.Post("/jobs/{id}/apply", deps.JobHandler.Apply)
			r.Get("/applications/my", deps.JobHandler.ListMyApplications)

			// Window display for clients; readable by every role.
			r.Get("/settings/attendance", deps.SettingsHandler.Get)

			// Employee surface.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEmployee)

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/check-in", deps.AttendanceHandler.CheckIn)
					r.Post("/check-out", deps.AttendanceHandler.CheckOut)
					r.Get("/today", deps.AttendanceHandler.TodayStatus)
					r.Get("/history", deps.AttendanceHandler.History)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", deps.LeaveHandler.Submit)
					r.Get("/my", deps.LeaveHandler.ListMine)
				})
			})

			// Back-office surface.
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireBackOffice)

				r.Route("/locations", func(r chi.Router) {
					r.Post("/", deps.LocationHandler.Create)
					r.Get("/", deps.LocationHandler.List)
					r.Get("/{id}", deps.LocationHandler.Get)
					r.Put("/{id}", deps.LocationHandler.Update)
					r.Delete("/{id}", deps.LocationHandler.Deactivate)
				})

				r.Put("/settings/attendance", deps.SettingsHandler.Update)

				r.Get("/attendance", deps.AttendanceHandler.List)
				r.Get("/reports/attendance", deps.ReportHandler.MonthlyAttendance)

				r.Route("/postings", func(r chi.Router) {
					r.Post("/", deps.JobHandler.CreatePosting)
					r.Get("/", deps.JobHandler.ListPostings)
					r.Put("/{id}", deps.JobHandler.UpdatePosting)
				})

				r.Route("/applications", func(r chi.Router) {
					r.Get("/", deps.JobHandler.ListApplications)
					r.Patch("/{id}/status", deps.JobHandler.UpdateApplicationStatus)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/pending", deps.LeaveHandler.ListPending)
					r.Post("/{id}/approve", deps.LeaveHandler.Approve)
					r.Post("/{id}/reject", deps.LeaveHandler.Reject)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
