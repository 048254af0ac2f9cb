package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reclaimhq/reclaim/internal/auth"
	authdomain "github.com/reclaimhq/reclaim/internal/auth/domain"
	"github.com/reclaimhq/reclaim/internal/auth/session"
	"github.com/reclaimhq/reclaim/internal/billing"
	billingdomain "github.com/reclaimhq/reclaim/internal/billing/domain"
	"github.com/reclaimhq/reclaim/internal/claim"
	claimdomain "github.com/reclaimhq/reclaim/internal/claim/domain"
	"github.com/reclaimhq/reclaim/internal/config"
	"github.com/reclaimhq/reclaim/internal/interest"
	interestdomain "github.com/reclaimhq/reclaim/internal/interest/domain"
	"github.com/reclaimhq/reclaim/internal/item"
	itemdomain "github.com/reclaimhq/reclaim/internal/item/domain"
	"github.com/reclaimhq/reclaim/internal/location"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"github.com/reclaimhq/reclaim/internal/logger"
	"github.com/reclaimhq/reclaim/internal/metrics"
	"github.com/reclaimhq/reclaim/internal/ratelimit"
	"github.com/reclaimhq/reclaim/internal/testdrive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	session.Module,
	auth.Module,
	location.Module,
	item.Module,
	claim.Module,
	interest.Module,
	billing.Module,
	ratelimit.Module,
	metrics.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:          log.Named("http"),
		Debug:           !cfg.IsProduction(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(m.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", m.Handler())

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	return NewEngine(cfg, log, m)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	log           *zap.Logger
	authsvc       authdomain.Service
	sessions      *session.Manager
	locationSvc   locationdomain.Service
	itemSvc       itemdomain.Service
	claimSvc      claimdomain.Service
	interestSvc   interestdomain.Service
	billingSvc    billingdomain.Service
	webhookSvc    billingdomain.WebhookService
	resetWorker   *testdrive.Worker
	publicLimiter *ratelimit.PublicLimiter
	metrics       *metrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	Log           *zap.Logger
	Authsvc       authdomain.Service
	Sessions      *session.Manager
	LocationSvc   locationdomain.Service
	ItemSvc       itemdomain.Service
	ClaimSvc      claimdomain.Service
	InterestSvc   interestdomain.Service
	BillingSvc    billingdomain.Service
	WebhookSvc    billingdomain.WebhookService
	ResetWorker   *testdrive.Worker
	PublicLimiter *ratelimit.PublicLimiter `optional:"true"`
	Metrics       *metrics.Metrics         `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		log:           p.Log.Named("server"),
		authsvc:       p.Authsvc,
		sessions:      p.Sessions,
		locationSvc:   p.LocationSvc,
		itemSvc:       p.ItemSvc,
		claimSvc:      p.ClaimSvc,
		interestSvc:   p.InterestSvc,
		billingSvc:    p.BillingSvc,
		webhookSvc:    p.WebhookSvc,
		resetWorker:   p.ResetWorker,
		publicLimiter: p.PublicLimiter,
		metrics:       p.Metrics,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerPublicRoutes()
	svc.registerWebhookRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.GET("/confirm", s.ConfirmEmail)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/user", s.AuthRequired(), s.Me)
	auth.POST("/start-test-drive", s.StartTestDrive)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1", s.AuthRequired())

	// -------- Locations --------
	api.GET("/locations", s.ListLocations)
	api.POST("/locations", s.CreateLocation)
	api.GET("/locations/:locationId", s.GetLocation)
	api.PUT("/locations/:locationId", s.UpdateLocation)
	api.DELETE("/locations/:locationId", s.DeleteLocation)

	// -------- Subscription mirror --------
	api.GET("/locations/:locationId/subscription", s.GetSubscriptionStatus)
	api.GET("/locations/:locationId/subscription-details", s.GetSubscriptionDetails)

	// -------- Items --------
	api.GET("/locations/:locationId/items", s.ListItems)
	api.POST("/locations/:locationId/items", s.CreateItem)
	api.GET("/locations/:locationId/items/:itemId", s.GetItem)
	api.PUT("/locations/:locationId/items/:itemId", s.UpdateItem)
	api.DELETE("/locations/:locationId/items/:itemId", s.DeleteItem)
	api.PATCH("/locations/:locationId/items/:itemId/visibility", s.SetItemVisibility)

	// -------- Claims --------
	api.GET("/locations/:locationId/claims", s.ListClaims)
	api.PATCH("/locations/:locationId/claims/:claimId", s.UpdateClaim)

	// -------- Billing --------
	api.POST("/stripe/create-checkout-session", s.CreateCheckoutSession)
	api.POST("/stripe/create-portal-session", s.CreatePortalSession)
}

func (s *Server) registerPublicRoutes() {
	public := s.engine.Group("/public")

	public.GET("/locations/:locationId", s.GetPublicLocation)
	public.GET("/locations/:locationId/items", s.ListPublicItems)
	public.GET("/locations/:locationId/items/:itemId", s.GetPublicItem)
	public.POST("/claims", s.PublicRateLimit("claims"), s.SubmitClaim)
	public.POST("/interest", s.PublicRateLimit("interest"), s.RegisterInterest)
	public.GET("/cron/reset-test-items", s.CronSecretRequired(), s.ResetTestItems)
}

func (s *Server) registerWebhookRoutes() {
	s.engine.POST("/webhooks/stripe", s.HandleStripeWebhook)
}
