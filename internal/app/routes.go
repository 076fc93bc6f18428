package app

import (
	"MedDesk/internal/auth"
	"MedDesk/internal/cache"
	"MedDesk/internal/config"
	"MedDesk/internal/handlers"
	"MedDesk/internal/password"
	"MedDesk/internal/repo"
	"MedDesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	tokens := auth.NewTokenManager(cfg.JWT.Secret,
		cfg.JWT.AccessTTL.Duration(), cfg.JWT.RefreshTTL.Duration())

	accountRepo := repo.NewPGAccountRepo(db)
	accountSvc := service.NewAccountService(accountRepo, password.NewDefaultPolicy())
	authHandler := handlers.NewAuthHandler(accountSvc, tokens)
	api.POST("/register", authHandler.Register)
	api.POST("/token", authHandler.Token)
	api.POST("/token/refresh", authHandler.TokenRefresh)

	patientRepo := repo.NewPGPatientRepo(db)
	doctorRepo := repo.NewPGDoctorRepo(db)
	appointmentRepo := repo.NewPGAppointmentRepo(db)

	doctorCache := cache.NewDoctorCache(rdb, cfg.Redis.DefaultTTL.Duration())
	doctorSvc := service.NewDoctorService(doctorRepo, doctorCache)
	doctorHandler := handlers.NewDoctorHandler(doctorSvc)
	// Doctor reads are public; mutation is admin-only below.
	api.GET("/doctors", doctorHandler.List)
	api.GET("/doctors/:id", doctorHandler.GetByID)

	// Todos are open in dev mode, no auth.
	todoSvc := service.NewTodoService(repo.NewPGTodoRepo(db))
	registerTodoRoutes(api, handlers.NewTodoHandler(todoSvc))

	protected := api.Group("", auth.RequireAuth(tokens))

	patientSvc := service.NewPatientService(patientRepo)
	registerPatientRoutes(protected, handlers.NewPatientHandler(patientSvc))

	appointmentSvc := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	registerAppointmentRoutes(protected, handlers.NewAppointmentHandler(appointmentSvc))

	admin := protected.Group("", auth.RequireAdmin())
	admin.POST("/doctors", doctorHandler.Create)
	admin.PUT("/doctors/:id", doctorHandler.Update)
	admin.DELETE("/doctors/:id", doctorHandler.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "MedDesk API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerPatientRoutes(api *gin.RouterGroup, h *handlers.PatientHandler) {
	api.GET("/patients", h.List)
	api.POST("/patients", h.Create)
	api.GET("/patients/:id", h.GetByID)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)
}

func registerAppointmentRoutes(api *gin.RouterGroup, h *handlers.AppointmentHandler) {
	api.GET("/appointments", h.List)
	api.POST("/appointments", h.Create)
	api.GET("/appointments/:id", h.GetByID)
	api.PUT("/appointments/:id", h.Update)
	api.DELETE("/appointments/:id", h.Delete)
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.GET("/todos/:id", h.GetByID)
	api.PUT("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
}
