package api

import (
	"context"
	"net/http"
	"sync"

	"storefront/config"
	"storefront/libs"
	"storefront/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		ctx := context.Background()

		cfg := config.LoadConfig()
		logger, err := libs.NewLogger(true)
		if err != nil {
			initErr = err
			return
		}

		pool, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to connect to database", zap.Error(err))
			initErr = err
			return
		}

		mailer, err := libs.NewMailer(cfg)
		if err != nil {
			logger.Warn("order confirmation emails disabled", zap.Error(err))
		}

		router = routes.NewRouter(routes.Dependencies{
			Config:  cfg,
			DB:      pool,
			Cache:   libs.InitRedis(ctx, cfg, logger),
			Mailer:  mailer,
			Metrics: libs.NewMetrics(),
			Logger:  logger,
		})
	})
}

// Handler is the serverless entry point; the router is built on first use
// and shared across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, `{"success":false,"message":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
