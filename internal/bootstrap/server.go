package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/astrotravel/spaceport/api"
	"github.com/astrotravel/spaceport/config"
	"github.com/astrotravel/spaceport/internal/middleware"
	"github.com/astrotravel/spaceport/internal/service/booking"
	"github.com/astrotravel/spaceport/internal/service/catalog"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase, logger *logrus.Logger) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, catalogSvc, bookingSvc, logger),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	apiGroup := router.Group("/api")

	api.NewDestinationHandler(catalogSvc, logger).Register(apiGroup.Group("/destinations"))
	api.NewTripHandler(catalogSvc, logger).Register(apiGroup.Group("/trips"))
	api.NewAccommodationHandler(catalogSvc, logger).Register(apiGroup.Group("/accommodations"))

	bookings := apiGroup.Group("/bookings")
	bookings.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger))
	api.NewBookingHandler(bookingSvc, logger).Register(bookings)

	return router
}
