package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/auth"
	"github.com/aharewards/aha-api/internal/client/billing"
	stripeclient "github.com/aharewards/aha-api/internal/client/billing/stripe"
	"github.com/aharewards/aha-api/internal/client/crm"
	"github.com/aharewards/aha-api/internal/config"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/handlers"
	"github.com/aharewards/aha-api/internal/logger"
	"github.com/aharewards/aha-api/internal/services"
)

// Server wires configuration, clients, services and handlers into a gin
// engine.
type Server struct {
	cfg     *config.Config
	pool    *pgxpool.Pool
	queries *db.Queries
	billing billing.Provider

	syncHandler     *handlers.SyncHandler
	customerHandler *handlers.CustomerHandler
	rewardHandler   *handlers.RewardHandler
	crmHandler      *handlers.CRMHandler
	webhookHandler  *handlers.WebhookHandler
}

// New builds the dependency graph. The CRM and email integrations are
// optional; everything else is required.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	queries := db.New(pool)

	provider, err := stripeclient.NewService(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
	if err != nil {
		pool.Close()
		return nil, err
	}

	var notifier services.RewardNotifier
	if cfg.EmailConfigured() {
		notifier = services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		logger.Info("Email notifications disabled, RESEND_API_KEY not set")
	}

	syncService := services.NewCustomerSyncService(queries, provider, cfg.SyncPageSize, cfg.SyncPageDelay)
	rewardService := services.NewRewardService(queries, notifier)
	redemptionService := services.NewRedemptionService(queries, provider, cfg.AppBaseURL)
	eventService := services.NewPaymentEventService(queries, rewardService)

	var crmService *services.CRMSyncService
	if cfg.CRMConfigured() {
		var crmOpts []crm.Option
		if cfg.GHLBaseURL != "" {
			crmOpts = append(crmOpts, crm.WithBaseURL(cfg.GHLBaseURL))
		}
		crmClient := crm.NewClient(cfg.GHLToken, cfg.GHLLocationID, crmOpts...)
		crmService = services.NewCRMSyncService(queries, crmClient)
	} else {
		logger.Info("CRM integration disabled, GHL credentials not set")
	}

	common := handlers.NewCommonServices(queries, syncService, rewardService, redemptionService, eventService, crmService)

	return &Server{
		cfg:             cfg,
		pool:            pool,
		queries:         queries,
		billing:         provider,
		syncHandler:     handlers.NewSyncHandler(common),
		customerHandler: handlers.NewCustomerHandler(common),
		rewardHandler:   handlers.NewRewardHandler(common),
		crmHandler:      handlers.NewCRMHandler(common),
		webhookHandler:  handlers.NewWebhookHandler(common, provider),
	}, nil
}

// Close releases the database pool.
func (s *Server) Close() {
	s.pool.Close()
}

// InitializeRoutes registers all routes on the router.
func (s *Server) InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	// Health check
	router.GET("/health", handlers.Health)

	// Webhooks authenticate by signature, not by JWT.
	router.POST("/webhooks/billing", s.webhookHandler.HandleBillingWebhook)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.EnsureValidToken(s.queries, s.cfg.SupabaseJWTSecret))
		{
			// Sync operations are restricted to owners and admins
			sync := protected.Group("/sync")
			sync.Use(auth.RequireRoles(constants.SyncRoles...))
			{
				sync.POST("/customers", s.syncHandler.SyncCustomers)
			}

			// Customer views for all staff
			customers := protected.Group("/customers")
			customers.Use(auth.RequireRoles(constants.StaffRoles...))
			{
				customers.GET("", s.customerHandler.ListCustomers)
				customers.GET("/:customer_id", s.customerHandler.GetCustomer)
			}

			// Rewards: members see and redeem their own, staff may act for
			// any member
			rewards := protected.Group("/rewards")
			{
				rewards.GET("", s.rewardHandler.ListRewards)
				rewards.POST("/calculate", s.rewardHandler.CalculateRewards)
				rewards.POST("/:reward_id/apply-credit", s.rewardHandler.ApplyCredit)
				rewards.POST("/:reward_id/share", s.rewardHandler.ShareReward)
			}

			// CRM operations are restricted to owners and admins
			crmRoutes := protected.Group("/crm")
			crmRoutes.Use(auth.RequireRoles(constants.SyncRoles...))
			{
				crmRoutes.POST("/sync", s.crmHandler.SyncCRM)
				crmRoutes.POST("/bulk-tag", s.crmHandler.BulkTag)
				crmRoutes.GET("/status", s.crmHandler.CRMStatus)
			}
		}
	}
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	router := gin.Default()
	s.InitializeRoutes(router)

	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
