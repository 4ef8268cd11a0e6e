package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"assetverse/providers"
	"assetverse/providers/configprovider"
	"assetverse/providers/databaseprovider"
	"assetverse/providers/firebaseprovider"
	"assetverse/providers/loggerprovider"
	"assetverse/providers/middlewareprovider"
	"assetverse/providers/paymentprovider"
	"assetverse/providers/redisprovider"
	assetservice "assetverse/services/asset"
	dashboardservice "assetverse/services/dashboard"
	paymentservice "assetverse/services/payment"
	requestservice "assetverse/services/request"
	userservice "assetverse/services/user"

	"go.uber.org/zap"
)

type Server struct {
	Config     providers.ConfigProvider
	DB         providers.DBProvider
	Cache      providers.RedisProvider
	Logger     providers.ZapLoggerProvider
	Middleware providers.AuthMiddlewareService

	UserHandler      *userservice.UserHandler
	AssetHandler     *assetservice.AssetHandler
	RequestHandler   *requestservice.RequestHandler
	DashboardHandler *dashboardservice.DashboardHandler
	PaymentHandler   *paymentservice.PaymentHandler

	httpServer *http.Server
}

func SrvInit() *Server {
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		logger.GetLogger().Warn("no .env file loaded, relying on environment", zap.Error(err))
	}

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())
	cache := redisprovider.NewRedisProvider(cfg.GetRedisAddr())

	identity, err := firebaseprovider.NewFirebaseProvider(cfg.GetFirebaseCredentialsFile())
	if err != nil {
		logger.GetLogger().Fatal("failed to initialize identity provider", zap.Error(err))
	}
	gateway := paymentprovider.NewPaymentProvider(cfg.GetPaymentGatewayURL(), cfg.GetPaymentGatewayKey())

	middleware := middlewareprovider.NewAuthMiddlewareService(db.DB(), cache)

	// repositories
	userRepo := userservice.NewUserRepository(db.DB())
	assetRepo := assetservice.NewAssetRepository(db.DB())
	requestRepo := requestservice.NewRequestRepository(db.DB())
	dashboardRepo := dashboardservice.NewDashboardRepository(db.DB())
	paymentRepo := paymentservice.NewPaymentRepository(db.DB())

	// services
	userSvc := userservice.NewUserService(userRepo, identity, cache, logger)
	assetSvc := assetservice.NewAssetService(assetRepo, logger)
	requestSvc := requestservice.NewRequestService(requestRepo, logger)
	dashboardSvc := dashboardservice.NewDashboardService(dashboardRepo, logger)
	paymentSvc := paymentservice.NewPaymentService(paymentRepo, gateway, logger)

	return &Server{
		Config:           cfg,
		DB:               db,
		Cache:            cache,
		Logger:           logger,
		Middleware:       middleware,
		UserHandler:      userservice.NewUserHandler(userSvc, logger, middleware),
		AssetHandler:     assetservice.NewAssetHandler(assetSvc, logger, middleware),
		RequestHandler:   requestservice.NewRequestHandler(requestSvc, logger, middleware),
		DashboardHandler: dashboardservice.NewDashboardHandler(dashboardSvc, logger, middleware),
		PaymentHandler:   paymentservice.NewPaymentHandler(paymentSvc, logger, middleware),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
	}
	if err := s.Cache.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing cache", zap.Error(err))
	}
	if err := s.DB.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing DB", zap.Error(err))
	}

	s.Logger.GetLogger().Info("server shutdown complete")
	s.Logger.SyncLogger()
}
