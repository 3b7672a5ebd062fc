package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"eventos_api/internal/adapter/http/handlers"
	"eventos_api/internal/adapter/http/routes"
	"eventos_api/internal/adapter/persistence/repository"
	"eventos_api/internal/infrastructure/config"
	"eventos_api/internal/infrastructure/database"
	"eventos_api/internal/infrastructure/export"
	"eventos_api/internal/infrastructure/llm"
	"eventos_api/internal/infrastructure/logger"
	"eventos_api/internal/infrastructure/mail"
	"eventos_api/internal/infrastructure/metrics"
	"eventos_api/internal/infrastructure/payments"
	"eventos_api/internal/infrastructure/session"
	"eventos_api/internal/infrastructure/storage"
	"eventos_api/internal/infrastructure/token"
	"eventos_api/internal/usecase"
	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const companyName = "Eventos"

// @title           Eventos API
// @version         1.0
// @description     Event planning quotes: catalog, modular and packaged quotes, affiliates, deposits and recommendations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes, cfg.Tables.Tracking)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.Tables.Users)
	affiliateRepo := repository.NewAffiliateDynamoRepository(ddb, cfg.Tables.Affiliates)
	depositRepo := repository.NewDepositDynamoRepository(ddb, cfg.Tables.Deposits)

	var documentStore interfaces.IDocumentStore
	if cfg.Storage.Bucket != "" {
		documentStore = storage.NewS3DocumentStore(awsCfg, cfg.Storage.Bucket, cfg.Storage.Endpoint, cfg.Storage.PublicBaseURL)
	} else {
		logg.Info("EXPORT_BUCKET not set; exported quotes are not archived")
	}

	var recommender interfaces.IEventRecommender
	gemini, err := llm.NewGeminiRecommender(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model, "", logg)
	switch {
	case errors.Is(err, llm.ErrMissingGeminiAPIKey):
		logg.Warn("GEMINI_API_KEY not set; recommendations are disabled")
	case err != nil:
		return err
	default:
		recommender = gemini
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Deposits.AccessToken, cfg.Deposits.MockGateway, logg)
	if err != nil {
		logg.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	m := metrics.New()

	affiliateUseCase := usecase.NewAffiliateUseCase(affiliateRepo, userRepo, quoteRepo, logg)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, affiliateUseCase, m, cfg.Messaging.WhatsAppNumber, logg)
	exportUseCase := usecase.NewExportUseCase(quoteUseCase, export.NewPDFRenderer(companyName), documentStore, logg)
	depositUseCase := usecase.NewDepositUseCase(depositRepo, quoteUseCase, paymentGateway, usecase.DepositSettings{
		Percent: cfg.Deposits.Percent,
		Sandbox: cfg.Deposits.MockGateway,
	}, logg)
	authUseCase := usecase.NewAuthUseCase(
		userRepo,
		session.NewRedisSessionStore(rdb),
		session.NewRedisProfileFeed(rdb, logg),
		mail.NewSESMailer(awsCfg, cfg.Mail.Sender),
		token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL),
		usecase.AuthSettings{
			AdminEmails:  cfg.AdminEmails,
			ResetTTL:     cfg.JWT.ResetTTL,
			ResetURLBase: cfg.Mail.ResetURLBase,
		},
		logg,
	)
	recommendationUseCase := usecase.NewRecommendationUseCase(recommender, m, logg)

	router := routes.NewRouter(routes.Handlers{
		Catalog:         handlers.NewCatalogHandler(),
		Quotes:          handlers.NewQuoteHandler(quoteUseCase),
		Export:          handlers.NewExportHandler(exportUseCase),
		Deposits:        handlers.NewDepositHandler(depositUseCase),
		Auth:            handlers.NewAuthHandler(authUseCase),
		Profile:         handlers.NewProfileHandler(authUseCase),
		Affiliates:      handlers.NewAffiliateHandler(affiliateUseCase),
		Recommendations: handlers.NewRecommendationHandler(recommendationUseCase),
	}, routes.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Authenticator:  authUseCase,
		Metrics:        m,
		Log:            logg,
	})

	return routes.Run(ctx, router, cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout, logg)
}
