package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/umairk/tripsplit/internal/auth"
	"github.com/umairk/tripsplit/internal/config"
	"github.com/umairk/tripsplit/internal/metrics"
	"github.com/umairk/tripsplit/internal/middleware"
	"github.com/umairk/tripsplit/internal/service"
	"github.com/umairk/tripsplit/internal/storage"
)

// NewRouter wires all handlers, middleware and routes into a gin engine.
// jwtManager is nil when authentication is not configured.
func NewRouter(cfg *config.Config, store storage.Store, jwtManager *auth.JWTManager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	trips := NewTripHandler(service.NewTripService(store))
	expenses := NewExpenseHandler(service.NewExpenseService(store))
	settlements := NewSettlementHandler(service.NewSettlementService(store))
	data := NewDataHandler(service.NewDataService(store))
	authHandler := NewAuthHandler(cfg, jwtManager)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.POST("/v1/auth/token", authHandler.Token)

	v1 := router.Group("/v1", middleware.RequireAuth(jwtManager))
	{
		v1.POST("/trips", trips.Create)
		v1.GET("/trips", trips.List)
		v1.GET("/trips/:id", trips.Get)
		v1.PUT("/trips/:id", trips.Update)
		v1.DELETE("/trips/:id", trips.Delete)

		v1.POST("/trips/:id/expenses", expenses.Create)
		v1.GET("/trips/:id/expenses", expenses.ListByTrip)
		v1.PUT("/expenses/:id", expenses.Update)
		v1.DELETE("/expenses/:id", expenses.Delete)

		v1.GET("/trips/:id/balances", settlements.Balances)
		v1.GET("/trips/:id/participants/:name", settlements.Participant)
		v1.POST("/trips/:id/settlements", settlements.Confirm)
		v1.GET("/settlements", settlements.History)

		v1.GET("/export", data.Export)
		v1.DELETE("/data", data.Wipe)
	}

	return router
}
