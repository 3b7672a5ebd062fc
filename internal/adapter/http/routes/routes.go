package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "eventos_api/docs"
	"eventos_api/internal/adapter/http/handlers"
	"eventos_api/internal/adapter/http/middleware"
	"eventos_api/internal/infrastructure/metrics"
	"eventos_api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog         *handlers.CatalogHandler
	Quotes          *handlers.QuoteHandler
	Export          *handlers.ExportHandler
	Deposits        *handlers.DepositHandler
	Auth            *handlers.AuthHandler
	Profile         *handlers.ProfileHandler
	Affiliates      *handlers.AffiliateHandler
	Recommendations *handlers.RecommendationHandler
}

type Options struct {
	AllowedOrigins []string
	// Authenticator validates bearer tokens for protected routes.
	Authenticator usecase.IAuthUseCase
	Metrics       *metrics.Metrics
	Log           *zap.Logger
}

// NewRouter builds the gin engine with middlewares, docs, metrics and every /v1 route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log.Named("http")))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middleware.RequireAuth(opts.Authenticator)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog, h.Recommendations)
	addQuoteRoutes(v1, authenticated, h.Quotes, h.Export, h.Deposits)
	addIdentityRoutes(v1, authenticated, h.Auth, h.Profile, h.Affiliates)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{"Content-Disposition", "X-Document-Location"}
	return cfg
}

// Run serves router on port until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, router http.Handler, port int, shutdownTimeout time.Duration, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
