package server

import (
	"net/http"

	account "rewear/internal/accountService"
	catalog "rewear/internal/catalogService"
	"rewear/internal/metrics"
	swap "rewear/internal/swapService"
	handler "rewear/services/exchange/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogSvc *catalog.CatalogService, swapSvc *swap.SwapService, accountSvc *account.AccountService, jwtSecret string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())            // recover from panics
	router.Use(RequestLoggerMiddleware)   // custom request logging
	router.Use(metrics.PrometheusMiddleware())

	itemHandler := handler.NewItemHandler(catalogSvc)
	swapHandler := handler.NewSwapHandler(swapSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)

	authRequired := AuthRequired(jwtSecret)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", accountHandler.SignupHandler)
		authGroup.POST("/login", accountHandler.LoginHandler)
		authGroup.GET("/me", authRequired, accountHandler.MeHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", itemHandler.ListItemsHandler)
		items.GET("/my-items", authRequired, itemHandler.MyItemsHandler)
		items.GET("/:item_id", itemHandler.GetItemHandler)
		items.POST("", authRequired, itemHandler.CreateItemHandler)
		items.POST("/:item_id/approve", authRequired, itemHandler.ApproveItemHandler)
		items.POST("/:item_id/reject", authRequired, itemHandler.RejectItemHandler)
	}

	swaps := router.Group("/swaps", authRequired)
	{
		swaps.POST("", swapHandler.CreateSwapHandler)
		swaps.POST("/:swap_id/respond", swapHandler.RespondToSwapHandler)
		swaps.GET("", swapHandler.GetUserSwapsHandler)
	}

	return router
}
