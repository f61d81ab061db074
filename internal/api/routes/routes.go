// server/internal/api/routes/routes.go
package routes

import (
	"net/http"

	"fleet-maintenance-api-server/config"
	"fleet-maintenance-api-server/internal/api/handlers"
	"fleet-maintenance-api-server/internal/api/middleware"
	"fleet-maintenance-api-server/internal/auth"
	"fleet-maintenance-api-server/internal/fleet"
	"fleet-maintenance-api-server/internal/logger"
	"fleet-maintenance-api-server/internal/metrics"
	"fleet-maintenance-api-server/internal/socket"
	"fleet-maintenance-api-server/internal/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies are the components the router hands to its handlers.
type Dependencies struct {
	Config config.Config
	Fleet  *fleet.Service
	Auth   *auth.Service
	Hub    *socket.Hub
	Files  uploads.Store
	Log    *logrus.Logger
}

// SetupRouter wires middleware and every route of the API.
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	httpLog := logger.WithComponent(deps.Log, "http")

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxMultipartMemory
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		httpLog.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(logger.RequestLogger(httpLog))
	router.Use(metrics.Middleware())
	router.Use(cors.New(corsConfig(cfg.CORS)))

	// Handlers
	authHandler := &handlers.AuthHandler{Auth: deps.Auth, Log: httpLog}
	truckHandler := &handlers.TruckHandler{Fleet: deps.Fleet, Log: httpLog}
	documentHandler := &handlers.DocumentHandler{Fleet: deps.Fleet, Log: httpLog}
	providerHandler := &handlers.ProviderHandler{Fleet: deps.Fleet, Log: httpLog}
	orderHandler := &handlers.OrderHandler{Fleet: deps.Fleet, Log: httpLog}
	expenseHandler := &handlers.ExpenseHandler{Fleet: deps.Fleet, Log: httpLog}
	referenceHandler := &handlers.ReferenceHandler{Fleet: deps.Fleet, Log: httpLog}
	maintenanceHandler := &handlers.MaintenanceHandler{Fleet: deps.Fleet, Log: httpLog}
	reportHandler := &handlers.ReportHandler{Fleet: deps.Fleet, Log: httpLog}
	webSocketHandler := &handlers.WebSocketHandler{Hub: deps.Hub, Auth: deps.Auth, Log: logger.WithComponent(deps.Log, "websocket")}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Fleet maintenance API is running")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if _, ok := deps.Files.(*uploads.LocalStore); ok {
		router.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)
	}

	api := router.Group("/api")
	{
		api.GET("/ws", webSocketHandler.ServeWs)

		// === Public routes ===
		authRoutes := api.Group("/auth")
		{
			login := []gin.HandlerFunc{}
			if cfg.RateLimit.LoginPerSecond > 0 {
				limiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst, httpLog)
				login = append(login, limiter.Handler())
			}
			authRoutes.POST("/login", append(login, authHandler.Login)...)
		}

		// === Protected routes ===
		protected := api.Group("/")
		protected.Use(middleware.Authenticate(deps.Auth))
		{
			protected.GET("/auth/profile", authHandler.Profile)
			protected.POST("/auth/logout", authHandler.Logout)

			trucks := protected.Group("/trucks")
			{
				trucks.GET("", truckHandler.GetAllTrucks)
				trucks.POST("", truckHandler.CreateTruck)
				trucks.PUT("/:id", truckHandler.UpdateTruck)
				trucks.DELETE("/:id", truckHandler.DeleteTruck)
				trucks.GET("/:id/documents", truckHandler.GetTruckDocuments)
			}

			documents := protected.Group("/documents")
			{
				documents.GET("", documentHandler.GetAllDocuments)
				documents.DELETE("/:id", documentHandler.DeleteDocument)
			}

			providers := protected.Group("/providers")
			{
				providers.GET("", providerHandler.GetAllProviders)
				providers.POST("", providerHandler.CreateProvider)
				providers.PUT("/:id", providerHandler.UpdateProvider)
				providers.DELETE("/:id", providerHandler.DeleteProvider)
			}

			orders := protected.Group("/orders")
			{
				orders.GET("", orderHandler.GetAllOrders)
				orders.POST("", orderHandler.CreateOrder)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.PUT("/:id", orderHandler.UpdateOrder)
				orders.DELETE("/:id", orderHandler.DeleteOrder)
				orders.GET("/:id/export", orderHandler.ExportOrder)
			}

			expenses := protected.Group("/expenses")
			{
				expenses.GET("", expenseHandler.GetAllExpenses)
				expenses.POST("", expenseHandler.CreateExpense)
				expenses.PUT("/budget", expenseHandler.UpdateBudget)
			}

			reference := protected.Group("/reference")
			{
				reference.GET("/drivers", referenceHandler.GetDrivers)
				reference.GET("/catalogs", referenceHandler.GetCatalogs)
			}

			maintenance := protected.Group("/maintenance-programs")
			{
				maintenance.GET("", maintenanceHandler.GetAllPrograms)
				maintenance.POST("", maintenanceHandler.CreateProgram)
				maintenance.DELETE("/:id", maintenanceHandler.DeleteProgram)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("/dashboard", reportHandler.GetDashboard)
				reports.GET("/costs-by-truck", reportHandler.GetCostsByTruck)
			}
		}
	}

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}
