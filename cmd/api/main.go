package main

import (
	"fmt"
	"net/http"

	"github.com/leavetrack/leave-backend-go/internal/config"
	appHTTP "github.com/leavetrack/leave-backend-go/internal/handler/http"
	"github.com/leavetrack/leave-backend-go/internal/pkg/database"
	"github.com/leavetrack/leave-backend-go/internal/pkg/jwt"
	"github.com/leavetrack/leave-backend-go/internal/pkg/oauth"
	"github.com/leavetrack/leave-backend-go/internal/pkg/sse"
	"github.com/leavetrack/leave-backend-go/internal/repository/postgresql"
	authService "github.com/leavetrack/leave-backend-go/internal/service/auth"
	exportService "github.com/leavetrack/leave-backend-go/internal/service/export"
	leaveService "github.com/leavetrack/leave-backend-go/internal/service/leave"
	notificationService "github.com/leavetrack/leave-backend-go/internal/service/notification"
	presenceService "github.com/leavetrack/leave-backend-go/internal/service/presence"
	userService "github.com/leavetrack/leave-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, userRepo, notificationSvc)
	presenceSvc := presenceService.NewPresenceService(userRepo, leaveRequestRepo)
	exportSvc := exportService.NewExportService(leaveRequestRepo, notificationRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		userHandler,
		leaveHandler,
		presenceHandler,
		notificationHandler,
		exportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
