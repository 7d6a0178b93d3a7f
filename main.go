// File: jeevanrakshak/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jeevanrakshak/config"
	"jeevanrakshak/database"
	complaintRepo "jeevanrakshak/database/repository/complaint"
	healthReportRepo "jeevanrakshak/database/repository/healthreport"
	userRepoPkg "jeevanrakshak/database/repository/user"
	"jeevanrakshak/handlers"
	"jeevanrakshak/middleware"
	"jeevanrakshak/routes"
	"jeevanrakshak/services/access"
	"jeevanrakshak/services/complaint"
	"jeevanrakshak/services/healthreport"
	ai "jeevanrakshak/services/intelligence"
	"jeevanrakshak/services/storage"
	"jeevanrakshak/services/user"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}

	database.InitDB()
	utils.InitAuthCache()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	authCache := utils.GetAuthCacheClient()
	utils.StartHealthMonitor(rootCtx, time.Minute,
		func(ctx context.Context) error { return authCache.Ping(ctx).Err() },
		database.Ping,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewFirebaseUserRepo()
	complaints := complaintRepo.NewFirebaseComplaintRepo()
	reports := healthReportRepo.NewFirebaseHealthReportRepo()

	// classifier; without an API key every complaint gets the urgency fallback.
	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; complaint priority will use the urgency fallback")
	}
	classifier := ai.NewPriorityClassifier(generator, config.AppConfig.ClassifierTimeout, logger.Named("classifier"))

	// complaint images; optional so the service runs without a bucket.
	var images complaint.ImageStore
	if config.AppConfig.FirebaseBucket != "" {
		store, err := storage.NewFirebaseImageStore(rootCtx, config.AppConfig.FirebaseCredentialsFile, config.AppConfig.FirebaseBucket)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize storage: %v", err)
		}
		defer store.Close()
		images = store
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Verifier: database.AuthClient,
		Sessions: user.NewRedisSessionStore(authCache),
		Secret:   []byte(config.AppConfig.JWTSecret),
		TTL:      config.AppConfig.SessionTTL,
		Logger:   logger.Named("user"),
	}
	complaintService := &complaint.DefaultComplaintService{
		Repo:       complaints,
		Classifier: classifier,
		Images:     images,
		Tracker:    complaint.NewSubmissionTracker(),
		Logger:     logger.Named("complaint"),
	}
	reportService := &healthreport.DefaultHealthReportService{
		Repo:   reports,
		Logger: logger.Named("healthreport"),
	}
	resolver := access.NewResolver(access.DefaultLinkTable(config.AppConfig.GISViewerURL))

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		resolver,
		handlers.NewUserHandler(userService),
		handlers.NewNavigationHandler(resolver),
		handlers.NewComplaintHandler(complaintService),
		handlers.NewHealthReportHandler(reportService),
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
