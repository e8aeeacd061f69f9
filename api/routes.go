package api

import (
	"gopkg.in/gin-gonic/gin.v1"
)

func SetupRoutes(router *gin.Engine, subscribeLimit gin.HandlerFunc) {
	router.GET("/search/suggest", SuggestHandler)
	router.GET("/search", SearchHandler)

	router.GET("/sections/team", TeamHandler)
	router.GET("/sections/hero", HeroHandler)
	router.GET("/sections/clients", ClientsHandler)
	router.GET("/home", HomePageHandler)

	subscribe := []gin.HandlerFunc{SubscribeHandler}
	if subscribeLimit != nil {
		subscribe = append([]gin.HandlerFunc{subscribeLimit}, subscribe...)
	}
	router.POST("/subscriptions", subscribe...)
	router.GET("/subscriptions/check", CheckSubscriptionHandler)

	router.POST("/cms/webhook", CMSWebhookHandler)

	router.GET("/health", HealthCheckHandler)
	router.GET("/metrics", MetricsHandler())

	router.GET("/_recover", func(c *gin.Context) {
		panic("test recover")
	})
}

// Routes is the set of paths reported individually in request metrics.
var Routes = map[string]bool{
	"/search/suggest":      true,
	"/search":              true,
	"/sections/team":       true,
	"/sections/hero":       true,
	"/sections/clients":    true,
	"/home":                true,
	"/subscriptions":       true,
	"/subscriptions/check": true,
	"/cms/webhook":         true,
	"/health":              true,
}
