package routes

import (
	"net/http"
	"time"

	"labura/handlers"
	"labura/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and the email flows.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/reset-password", hb.Auth.ResetPasswordHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.POST("/send-verification", hb.Auth.SendVerificationHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("", hb.Profile.GetProfileHandler)
		api.PATCH("", hb.Profile.UpdateProfileHandler)
		api.POST("/photo", hb.Profile.UploadPhotoHandler)
		api.POST("/offerings", hb.Profile.SubmitOfferingHandler)
	}
}

// RegisterProviderRoutes registers the public provider lookup.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Provider.ListProvidersHandler)
	}
}

// RegisterCatalogRoutes registers the public category/service tables.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", hb.Catalog.ListCategoriesHandler)
		api.GET("/categories/:id/services", hb.Catalog.ListServicesHandler)
	}
}

// RegisterViewRoutes registers the navigation state machine. Browsing is
// public; the session is identified by a client-generated header.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/view")
	{
		api.GET("", hb.View.GetViewHandler)
		api.POST("/home", hb.View.SelectHomeHandler)
		api.POST("/category", hb.View.SelectCategoryHandler)
		api.POST("/detail", hb.View.OpenDetailHandler)
		api.DELETE("/detail", hb.View.CloseDetailHandler)
		api.POST("/offer-form", hb.View.OpenOfferFormHandler)
		api.DELETE("/offer-form", hb.View.CloseOfferFormHandler)
		api.POST("/favorites/:providerID", hb.View.ToggleFavoriteHandler)
	}
}

// RegisterWizardRoutes registers the offering wizard. The steps are public;
// the submit itself enforces authentication.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.GET("", hb.Wizard.GetWizardHandler)
		api.POST("/category", hb.Wizard.SelectCategoryHandler)
		api.POST("/service", hb.Wizard.SelectServiceHandler)
		api.POST("/back", hb.Wizard.BackHandler)
		api.PUT("/details", hb.Wizard.SetDetailsHandler)
		api.POST("/submit", hb.Wizard.SubmitHandler)
		api.DELETE("", hb.Wizard.CancelHandler)
	}
}

// RegisterServicioRoutes registers the booked-service records.
func RegisterServicioRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/servicios")
	{
		// Reads and writes both require authentication.
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/tipo/:tipo", hb.Servicio.ListByTipoHandler)
		api.POST("", hb.Servicio.CreateServicioHandler)
		api.GET("", hb.Servicio.ListMyServiciosHandler)
		api.GET("/:id", hb.Servicio.GetServicioHandler)
		api.PATCH("/:id/estado", hb.Servicio.UpdateEstadoHandler)
		api.DELETE("/:id", hb.Servicio.DeleteServicioHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hola, soy Labura"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterViewRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterServicioRoutes(r, hb)
	RegisterHealthRoute(r)
}
