package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jordan/resume-studio/internal/config"
	"github.com/jordan/resume-studio/internal/gateway"
	"github.com/jordan/resume-studio/internal/llm"
	"github.com/jordan/resume-studio/internal/server/middleware"
	"github.com/jordan/resume-studio/internal/session"
	"github.com/jordan/resume-studio/internal/storage"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	ai          *gateway.Service
	store       *session.Store
	jwtService  *JWTService
	authHandler *AuthHandler
	closers     []func()
}

// New creates a server from configuration: Postgres-backed storage when
// DATABASE_URL is set, file-backed otherwise, and a Gemini client when an
// API key is present.
func New(cfg *config.Config) (*Server, error) {
	var kv storage.KV
	var closers []func()

	if cfg.DatabaseURL != "" {
		pg, err := storage.ConnectPG(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		kv = pg
		closers = append(closers, pg.Close)
	} else {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		kv = fs
	}

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = gemini
		closers = append(closers, func() { _ = gemini.Close() })
	} else {
		log.Println("GEMINI_API_KEY not set; AI routes will report the service as unconfigured")
	}

	s := newServer(gateway.New(client), session.NewStore(kv, cfg.Passwords), NewJWTService(cfg.JWT))
	s.closers = closers
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newServer wires the routing layer over explicit dependencies. Tests build
// servers through this path with in-memory backends.
func newServer(ai *gateway.Service, store *session.Store, jwtService *JWTService) *Server {
	return &Server{
		ai:          ai,
		store:       store,
		jwtService:  jwtService,
		authHandler: NewAuthHandler(store, jwtService),
	}
}

// Handler returns the full middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.withCORS(s.routes()))
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(s.jwtService.AsTokenValidator())
	optionalAuth := middleware.OptionalAuth(s.jwtService.AsTokenValidator())

	// AI routes accept anonymous callers; authenticated calls debit credits.
	mux.Handle("POST /api/analyze", optionalAuth(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("POST /api/generateSummary", optionalAuth(http.HandlerFunc(s.handleGenerateSummary)))
	mux.Handle("POST /api/enhance", optionalAuth(http.HandlerFunc(s.handleEnhance)))
	mux.Handle("POST /api/jobs", optionalAuth(http.HandlerFunc(s.handleJobs)))
	mux.Handle("POST /api/suggestSkills", optionalAuth(http.HandlerFunc(s.handleSuggestSkills)))
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("GET /api/credits", requireAuth(http.HandlerFunc(s.handleCredits)))

	mux.Handle("GET /api/resume", requireAuth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /api/resume", requireAuth(http.HandlerFunc(s.handleSaveResume)))
	mux.Handle("GET /api/render", requireAuth(http.HandlerFunc(s.handleRender)))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	for _, closeFn := range s.closers {
		closeFn()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
