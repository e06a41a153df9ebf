package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/hirepath/careers-backend-go/internal/config"
	appHTTP "github.com/hirepath/careers-backend-go/internal/handler/http"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
	"github.com/hirepath/careers-backend-go/internal/pkg/email"
	"github.com/hirepath/careers-backend-go/internal/pkg/jwt"
	"github.com/hirepath/careers-backend-go/internal/pkg/oauth"
	"github.com/hirepath/careers-backend-go/internal/pkg/redis"
	"github.com/hirepath/careers-backend-go/internal/pkg/storage"
	"github.com/hirepath/careers-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hirepath/careers-backend-go/internal/service/attendance"
	serviceAuth "github.com/hirepath/careers-backend-go/internal/service/auth"
	"github.com/hirepath/careers-backend-go/internal/service/file"
	jobService "github.com/hirepath/careers-backend-go/internal/service/job"
	leaveService "github.com/hirepath/careers-backend-go/internal/service/leave"
	locationService "github.com/hirepath/careers-backend-go/internal/service/location"
	reportService "github.com/hirepath/careers-backend-go/internal/service/report"
	settingsService "github.com/hirepath/careers-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "careers-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Redis is optional. Without it the rate limiter degrades open and
	// refresh-token revocation is disabled.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting and token revocation disabled", slog.Any("error", err))
			redisClient = nil
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	postingRepo := postgresql.NewPostingRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}
	fileService := file.NewFileService(fileStorage)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		locationSvc,
		settingsSvc,
		cfg.Attendance.Timezone,
	)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, googleService, redisClient)
	jobSvc := jobService.NewJobService(postingRepo, applicationRepo, fileService, emailService, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, cfg.Attendance.Timezone)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:        JWTService,
		RedisClient:       redisClient,
		FrontendURL:       cfg.App.FrontendURL,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc, JWTService, cfg.App.FrontendURL),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LocationHandler:   appHTTP.NewLocationHandler(locationSvc),
		SettingsHandler:   appHTTP.NewSettingsHandler(settingsSvc),
		JobHandler:        appHTTP.NewJobHandler(jobSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
