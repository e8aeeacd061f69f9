package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
	"gopkg.in/gin-contrib/cors.v1"
	"gopkg.in/gin-gonic/gin.v1"

	"github.com/lexcounsel/site-backend/api"
	"github.com/lexcounsel/site-backend/common"
	"github.com/lexcounsel/site-backend/utils"
	"github.com/lexcounsel/site-backend/version"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Site backend server",
	Run:   serverFn,
}

func init() {
	RootCmd.AddCommand(serverCmd)
}

func serverFn(cmd *cobra.Command, args []string) {
	clock := common.Init()
	defer common.Shutdown()

	log.Infof("Starting site backend server version %s", version.Version)

	// Setup gin
	gin.SetMode(viper.GetString("server.mode"))
	router := gin.New()

	limiter := utils.NewRateLimiter(
		rate.Limit(viper.GetFloat64("server.subscribe-rate")),
		viper.GetInt("server.subscribe-burst"))
	defer limiter.Stop()

	corsConfig := cors.DefaultConfig()
	if origins := viper.GetStringSlice("server.allowed-origins"); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(
		utils.RequestIDMiddleware(),
		utils.LoggerMiddleware(),
		api.MetricsMiddleware(api.Routes),
		utils.DataStoresMiddleware(common.Stores()),
		utils.ErrorHandlingMiddleware(),
		cors.New(corsConfig),
		utils.RecoveryMiddleware())

	api.SetupRoutes(router, limiter.Middleware())

	srv := &http.Server{
		Addr:    viper.GetString("server.bind-address"),
		Handler: router,
	}

	go func() {
		log.Infof("Running application on %s, init took %s", srv.Addr, time.Since(clock))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown: %s", err.Error())
	}
}
