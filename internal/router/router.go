package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/handler"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/middleware"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/logger"
	corsmiddleware "github.com/davidmichaelmontiza/Campus-Information-System/pkg/middleware/cors"
	reqidmiddleware "github.com/davidmichaelmontiza/Campus-Information-System/pkg/middleware/requestid"
)

// Options selects which routes are mounted and how they are gated.
type Options struct {
	APIPrefix      string
	ProtectCreate  bool
	EnableExports  bool
	EnableMetrics  bool
	AllowedOrigins []string
}

// Dependencies are the collaborators the engine is assembled from.
type Dependencies struct {
	Logger    *zap.Logger
	Auth      middleware.TokenValidator
	Metrics   *service.MetricsService
	System    *handler.SystemHandler
	Resources []handler.Routes
}

// New assembles the gin engine with the middleware chain, system routes and
// every campus resource under the API prefix.
func New(opts Options, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	if deps.Logger != nil {
		r.Use(logger.GinMiddleware(deps.Logger, principalFields))
	}
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	if opts.EnableMetrics && deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	var gate gin.HandlerFunc
	if deps.Auth != nil {
		gate = middleware.JWT(deps.Auth)
	}

	if deps.System != nil {
		r.GET("/health", deps.System.Health)
		r.GET("/ready", deps.System.Ready)
		if opts.EnableMetrics {
			r.GET("/metrics", deps.System.Prometheus)
			r.GET("/metrics/summary", chain(gate, deps.System.Snapshot)...)
		}
	}

	prefix := opts.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)
	for _, h := range deps.Resources {
		Register(api, h, gate, opts)
	}

	return r
}

// Register binds the CRUD routes of one resource below group. gate guards every
// route but creation, which is only gated when opts.ProtectCreate is set.
func Register(group *gin.RouterGroup, h handler.Routes, gate gin.HandlerFunc, opts Options) {
	routes := group.Group(h.Resource().Path)

	if opts.ProtectCreate {
		routes.POST("", chain(gate, h.Create)...)
	} else {
		routes.POST("", h.Create)
	}
	routes.GET("", chain(gate, h.List)...)
	if opts.EnableExports {
		routes.GET("/export", chain(gate, h.Export)...)
	}
	routes.GET("/:id", chain(gate, h.Get)...)
	routes.PUT("/:id", chain(gate, h.Update)...)
	routes.DELETE("/:id", chain(gate, h.Delete)...)
}

func principalFields(c *gin.Context) []zap.Field {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return nil
	}
	return []zap.Field{zap.String("user_id", claims.UserID)}
}

func chain(gate gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if gate == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{gate, h}
}
