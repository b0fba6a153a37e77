package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/filebridge/backend/internal/api/middleware"
	"github.com/filebridge/backend/internal/api/ws"
	"github.com/filebridge/backend/internal/infrastructure/config"
	"github.com/filebridge/backend/internal/infrastructure/logging"
	"github.com/filebridge/backend/internal/infrastructure/monitoring"
	"github.com/filebridge/backend/internal/providers/files"
	"github.com/filebridge/backend/internal/rpc"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router     *gin.Engine
	dispatcher *rpc.Dispatcher
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// NewServer creates a server instance with all routes and providers wired.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing file service",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewDefaultMetrics()

	dispatcher := rpc.NewDispatcher()
	files.NewProvider(logger).Register(dispatcher)
	logger.Info("Registered RPC methods", zap.Strings("methods", dispatcher.Methods()))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	wsHandler := ws.NewHandler(dispatcher, logger, metrics).
		WithMaxMessageBytes(cfg.WebSocket.MaxMessageBytes)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "file-service",
			"methods": dispatcher.Methods(),
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/ws", wsHandler.HandleConnection)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:     router,
		dispatcher: dispatcher,
		logger:     logger,
		config:     cfg,
		metrics:    metrics,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close flushes the logger. Open connections terminate with the process.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
