package routes

import (
	"log"
	"time"

	"pointage-backend/internal/api/handlers"
	"pointage-backend/internal/api/middleware"
	"pointage-backend/internal/auth"
	"pointage-backend/internal/config"
	"pointage-backend/internal/database/models"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/service"
	"pointage-backend/internal/week"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	chantierRepo := repository.NewChantierRepository(db)
	ficheRepo := repository.NewFicheRepository(db)
	jourRepo := repository.NewFicheJourRepository(db)
	signatureRepo := repository.NewSignatureRepository(db)
	affectationRepo := repository.NewAffectationRepository(db)
	transportRepo := repository.NewTransportRepository(db)
	congeRepo := repository.NewDemandeCongeRepository(db)
	closedPeriodRepo := repository.NewClosedPeriodRepository(db)

	// Initialize services
	var defaultHours [week.DaysPerFiche]float64
	copy(defaultHours[:], cfg.DefaultDailyHours)

	ficheService := service.NewFicheService(
		ficheRepo, jourRepo, signatureRepo, closedPeriodRepo,
		employeeRepo, chantierRepo, validator, defaultHours,
	)
	crewService := service.NewCrewService(
		affectationRepo, ficheRepo, jourRepo, signatureRepo,
		employeeRepo, chantierRepo, ficheService, validator,
	)
	transportService := service.NewTransportService(
		transportRepo, jourRepo, ficheRepo, employeeRepo, validator,
	)
	signatureService := service.NewSignatureService(
		signatureRepo, ficheRepo, ficheService, validator,
	)
	congeService := service.NewCongeService(congeRepo, employeeRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
		employeeRepo,
	)
	if err != nil {
		log.Fatalf("failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ficheHandler := handlers.NewFicheHandler(ficheService)
	jourHandler := handlers.NewFicheJourHandler(ficheService)
	crewHandler := handlers.NewCrewHandler(crewService)
	signatureHandler := handlers.NewSignatureHandler(signatureService)
	transportHandler := handlers.NewTransportHandler(transportService)
	congeHandler := handlers.NewCongeHandler(congeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Fiche routes
		fiches := v1.Group("/fiches")
		{
			fiches.POST("", ficheHandler.CreateFiche)
			fiches.GET("/modifiable", ficheHandler.CheckModifiable)
			fiches.POST("/roll-forward", crewHandler.RollForward)
			fiches.GET("/:id", ficheHandler.GetFiche)
			fiches.DELETE("/:id", ficheHandler.RemoveFiche)
			fiches.POST("/:id/transition", ficheHandler.Transition)
			fiches.GET("/:id/signatures", signatureHandler.ListByFiche)
		}

		// Fiche day routes
		jours := v1.Group("/jours")
		{
			jours.GET("/week", jourHandler.ListWeekJourIDs)
			jours.POST("/trajet-code", jourHandler.ApplyTrajetCode)
			jours.PATCH("/:id", jourHandler.UpdateJour)
			jours.DELETE("/:id", jourHandler.RemoveJour)
			jours.PUT("/:id/absence", jourHandler.SetAbsence)
		}

		// Chantier-scoped routes
		chantiers := v1.Group("/chantiers")
		{
			chantiers.GET("/:id/fiches", ficheHandler.ListByChantierWeek)
			chantiers.GET("/:id/crew", crewHandler.ListCrew)
			chantiers.POST("/:id/auto-validate", ficheHandler.AutoValidate)
			chantiers.POST("/:id/dissolve", crewHandler.Dissolve)
		}

		// Crew assignment routes
		v1.POST("/affectations", crewHandler.Assign)
		v1.GET("/employees/:id/affectations", crewHandler.ListAssignments)

		// Signature routes
		signatures := v1.Group("/signatures")
		{
			signatures.POST("", signatureHandler.Sign)
			signatures.POST("/batch", signatureHandler.SignBatch)
		}

		// Transport routes
		transport := v1.Group("/transport")
		{
			transport.POST("/jours", transportHandler.AssignJour)
			transport.GET("/jours", transportHandler.ListByChantierAndDate)
			transport.DELETE("/jours/:jourId", transportHandler.UnassignJour)
		}
		v1.POST("/vehicles", transportHandler.CreateVehicle)
		v1.GET("/vehicles", transportHandler.ListVehicles)

		// Leave request routes
		conges := v1.Group("/conges")
		{
			conges.POST("", congeHandler.Create)
			conges.GET("", congeHandler.ListMine)
			conges.GET("/unread-count", congeHandler.UnreadCount)
			conges.GET("/company", congeHandler.ListByStatus)
			conges.POST("/:id/validate-conducteur", congeHandler.ValidateConducteur)
			conges.POST("/:id/validate-rh", congeHandler.ValidateRH)
			conges.POST("/:id/refuse", congeHandler.Refuse)
			conges.POST("/:id/read", congeHandler.MarkRead)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			admin.DELETE("/transport/weeks/:week", transportHandler.PurgeWeek)
		}
	}

	return router
}
