package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/cache"
	"fintrack/internal/export"
	"fintrack/internal/gateway"
	"fintrack/internal/log"
	"fintrack/internal/session"
	"fintrack/internal/store"
	"fintrack/internal/views"
)

// ExportPublisher enqueues export requests for asynchronous processing.
type ExportPublisher interface {
	PublishExportRequest(ctx context.Context, msg *amqp.ExportRequestMessage) error
}

// ServerConfig collects the dependencies of the API server.
type ServerConfig struct {
	Addr     string
	Gateway  gateway.Gateway
	Store    *store.Store
	Sessions *session.Manager
	Logger   *log.Logger

	// Optional export paths. Publisher takes precedence; Serializer is the
	// synchronous fallback when no broker is configured.
	Publisher  ExportPublisher
	Serializer *export.Serializer

	CacheTTL     time.Duration
	CacheMaxSize int
}

type Server struct {
	http.Server
	store       *store.Store
	composer    *views.Composer
	gw          gateway.Gateway
	sessions    *session.Manager
	publisher   ExportPublisher
	serializer  *export.Serializer
	logger      *log.Logger
	rateLimiter *rateLimiter

	dashboardCache *cache.LRUCache[views.DashboardView]
	incomeCache    *cache.LRUCache[views.IncomeView]
	expensesCache  *cache.LRUCache[views.ExpensesView]
	cacheManager   *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and view caches, returning a ready-to-run server.
func NewServer(cfg ServerConfig) *Server {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	if cfg.CacheMaxSize <= 0 {
		cfg.CacheMaxSize = 64
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(log.DefaultConfig())
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    cfg.Addr,
			Handler: mux,
		},
		store:       cfg.Store,
		composer:    views.NewComposer(cfg.Store),
		gw:          cfg.Gateway,
		sessions:    cfg.Sessions,
		publisher:   cfg.Publisher,
		serializer:  cfg.Serializer,
		logger:      cfg.Logger.WithComponent(log.ComponentHTTP),
		rateLimiter: newRateLimiter(),

		dashboardCache: cache.NewLRUCache[views.DashboardView](cfg.CacheMaxSize, cfg.CacheTTL),
		incomeCache:    cache.NewLRUCache[views.IncomeView](cfg.CacheMaxSize, cfg.CacheTTL),
		expensesCache:  cache.NewLRUCache[views.ExpensesView](cfg.CacheMaxSize, cfg.CacheTTL),
		cacheManager:   cache.NewManager(),
	}

	s.cacheManager.Register(s.dashboardCache)
	s.cacheManager.Register(s.incomeCache)
	s.cacheManager.Register(s.expensesCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/dashboard", s.withMiddleware(s.handleDashboard))
	mux.HandleFunc("/api/income", s.withMiddleware(s.handleIncome))
	mux.HandleFunc("/api/expenses", s.withMiddleware(s.handleExpenses))
	mux.HandleFunc("/api/export/income", s.withMiddleware(s.handleExportIncome))
	mux.HandleFunc("/api/export/expenses", s.withMiddleware(s.handleExportExpenses))
	mux.HandleFunc("/api/profile", s.withMiddleware(s.handleProfile))
	mux.HandleFunc("/api/section", s.withMiddleware(s.handleSection))
	mux.HandleFunc("/api/view", s.withMiddleware(s.handleActiveView))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.cacheManager != nil {
			s.cacheManager.Stop()
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// invalidateViewCaches drops all memoized views after a store mutation.
func (s *Server) invalidateViewCaches() {
	s.dashboardCache.Delete(dashboardCacheKey(false))
	s.dashboardCache.Delete(dashboardCacheKey(true))
	s.incomeCache.Delete(incomeCacheKey)
	s.expensesCache.Delete(expensesCacheKey)
}

// withMiddleware adds security headers, rate limiting, and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ip := clientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		s.logger.InfoContext(ctx, "Request started",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, ip)

		if r.Method == http.MethodPost && !s.rateLimiter.allow(ip) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				log.FieldClientIP, ip,
				log.FieldMethod, r.Method,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			ErrorResponse(http.StatusTooManyRequests, "rate limit exceeded").Write(w)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		s.logger.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, duration.Milliseconds(),
			log.FieldClientIP, ip)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
