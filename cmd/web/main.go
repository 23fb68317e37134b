package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"localsite.dev/site-web/internal/cms"
	"localsite.dev/site-web/internal/config"
	"localsite.dev/site-web/internal/content"
	handlersPkg "localsite.dev/site-web/internal/handlers"
	"localsite.dev/site-web/internal/logging"
	mw "localsite.dev/site-web/internal/middleware"
)

// app holds the dependencies shared by the HTTP handlers.
type app struct {
	log             *zap.Logger
	home            *handlersPkg.Home
	cache           cacheInvalidator
	revalidateToken string
	now             func() time.Time
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var addr string
	flag.StringVar(&addr, "addr", ":"+cfg.Port, "HTTP listen address")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, cfg.DevMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if missing := cfg.CMS.Missing(); len(missing) > 0 {
		logger.Warn("cms not configured, serving fallback content", zap.Strings("missing", missing))
	}

	fallback, err := cms.LoadFallback(cfg.CMS.FallbackFile)
	if err != nil {
		logger.Fatal("load cms fallback", zap.String("path", cfg.CMS.FallbackFile), zap.Error(err))
	}
	client := cms.NewClient(cms.Options{
		APIURL:      cfg.CMS.APIURL,
		ProjectSlug: cfg.CMS.ProjectSlug,
		APIKey:      cfg.CMS.APIKey,
		Timeout:     cfg.CMS.Timeout,
		Fallback:    fallback,
		Logger:      logger.Named("cms"),
	})
	norm := content.New(logging.Diagnostics(logger, cfg.DevMode))

	a := &app{
		log:             logger,
		home:            handlersPkg.NewHome(client, norm, cfg.SiteURL),
		cache:           client,
		revalidateToken: cfg.RevalidateToken,
		now:             time.Now,
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening",
		zap.String("addr", addr),
		zap.Bool("dev_mode", cfg.DevMode),
		zap.Bool("cms_configured", client.Configured()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.Logger(a.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", a.HomeHandler)
		r.Post("/revalidate", a.RevalidateHandler)
	})
	return r
}

// HomeHandler returns the home page view model. The optional "path" query
// parameter sets the active navigation entry.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	vm, err := a.home.Build(r.Context(), path)
	if err != nil {
		mw.LoggerFrom(r.Context()).Warn("build home", zap.Error(err))
		mw.WriteError(w, http.StatusServiceUnavailable, "Content unavailable", "")
		return
	}
	mw.WriteJSON(w, http.StatusOK, vm)
}
