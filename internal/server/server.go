package server

import (
	"context"
	"net/http"
	"time"

	authdomain "github.com/baseafricadao/catalog/internal/auth/domain"
	"github.com/baseafricadao/catalog/internal/auth/session"
	"github.com/baseafricadao/catalog/internal/authorization"
	"github.com/baseafricadao/catalog/internal/catalog"
	"github.com/baseafricadao/catalog/internal/config"
	moderationsvc "github.com/baseafricadao/catalog/internal/moderation"
	"github.com/baseafricadao/catalog/internal/observability"
	obslogger "github.com/baseafricadao/catalog/internal/observability/logger"
	obsmetrics "github.com/baseafricadao/catalog/internal/observability/metrics"
	obstracing "github.com/baseafricadao/catalog/internal/observability/tracing"
	productdomain "github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, obsCfg, httpMetrics)
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	log           *zap.Logger
	authsvc       authdomain.Service
	sessions      *session.Manager
	authzSvc      authorization.Service
	productSvc    productdomain.Service
	moderationSvc moderationsvc.Service
	catalogSvc    catalog.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	Log           *zap.Logger
	Authsvc       authdomain.Service
	Sessions      *session.Manager
	AuthzSvc      authorization.Service
	ProductSvc    productdomain.Service
	ModerationSvc moderationsvc.Service
	CatalogSvc    catalog.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		log:           p.Log.Named("http.server"),
		authsvc:       p.Authsvc,
		sessions:      p.Sessions,
		authzSvc:      p.AuthzSvc,
		productSvc:    p.ProductSvc,
		moderationSvc: p.ModerationSvc,
		catalogSvc:    p.CatalogSvc,
	}
	s.RegisterRoutes()
	return s
}

// RegisterRoutes wires the HTTP surface. Submission and the public catalog
// are anonymous; everything that can see non-approved records goes through
// the same authentication plus capability gate.
func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	api.POST("/products", s.SubmitProduct)
	api.GET("/public/products", s.PublicProducts)

	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)
	api.GET("/me", s.AuthRequired(), s.Me)

	admin := api.Group("", s.AuthRequired())
	admin.GET("/products",
		s.RequirePermission(authorization.ObjectProduct, authorization.ActionProductView),
		s.ListProducts)
	admin.GET("/products/:status",
		s.RequirePermission(authorization.ObjectProduct, authorization.ActionProductView),
		s.ListProductsByStatus)
	admin.POST("/products/approve",
		s.RequirePermission(authorization.ObjectProduct, authorization.ActionProductApprove),
		s.ApproveProduct)
	admin.POST("/products/reject",
		s.RequirePermission(authorization.ObjectProduct, authorization.ActionProductReject),
		s.RejectProduct)
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
					log.Fatal("http server", zap.Error(err))
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
