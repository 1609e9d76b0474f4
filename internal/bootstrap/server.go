package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/zvrva/hotelease/api"
	"github.com/zvrva/hotelease/config"
	"github.com/zvrva/hotelease/internal/service/booking"
	"github.com/zvrva/hotelease/internal/service/metrics"
)

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, bookingSvc booking.UseCase, metricsSvc metrics.UseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, bookingSvc, metricsSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newRouter(cfg *config.Config, bookingSvc booking.UseCase, metricsSvc metrics.UseCase) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/api/v1")
	api.NewBookingHandler(bookingSvc).Register(v1.Group("/bookings"))
	api.NewDashboardHandler(metricsSvc, bookingSvc).Register(v1)
	api.NewPricingHandler().Register(v1)

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/hotelease.swagger.json"),
		)))
	}

	return engine
}
