// File: labura/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labura/config"
	"labura/database"
	profileRepoPkg "labura/database/repository/profile"
	servicioRepoPkg "labura/database/repository/servicio"
	"labura/handlers"
	"labura/middleware"
	"labura/routes"
	"labura/services/auth"
	"labura/services/identity"
	"labura/services/mail"
	"labura/services/profile"
	"labura/services/provider"
	"labura/services/servicio"
	"labura/services/session"
	"labura/services/storage"
	"labura/services/view"
	"labura/services/wizard"
	"labura/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitViewCache()
	utils.FirebaseInit()

	storageService, err := storage.NewFirebaseStorageService(
		config.AppConfig.FirebaseCredentialsFile,
		config.AppConfig.StorageBucket,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	servicioRepo := servicioRepoPkg.NewMongoServicioRepo()

	// identity provider and mail worker.
	identityProvider := identity.NewFirebaseProvider(utils.FirebaseAuthClient)
	mailer := mail.NewAsynqMailer()
	mail.InitMailWorker(identityProvider)

	sessionCell := session.NewCell()

	// services.
	authService := &auth.DefaultAuthService{
		Repo:      profileRepo,
		Provider:  identityProvider,
		Mailer:    mailer,
		Session:   sessionCell,
		AuthCache: utils.GetAuthCacheClient(),
	}
	profileService := &profile.DefaultProfileService{
		Repo:     profileRepo,
		Provider: identityProvider,
		Storage:  storageService,
		Session:  sessionCell,
	}
	lookupService := &provider.DefaultLookupService{
		Repo: profileRepo,
	}
	servicioService := &servicio.DefaultServicioService{
		Repo: servicioRepo,
	}

	viewStore := view.NewStore(utils.GetViewCacheClient())
	wizardStore := wizard.NewStore(utils.GetViewCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,

		Auth:     handlers.NewAuthHandler(authService),
		Profile:  handlers.NewProfileHandler(profileService),
		Provider: handlers.NewProviderHandler(lookupService),
		Catalog:  handlers.NewCatalogHandler(),
		View:     handlers.NewViewHandler(viewStore),
		Wizard:   handlers.NewWizardHandler(wizardStore, profileService),
		Servicio: handlers.NewServicioHandler(servicioService),
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := mailer.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close mail queue: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
