// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/activity"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/cache"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/config"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/handler"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/logging"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/middleware"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/render"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/scheduler"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/service"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/session"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/store"
	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/version"
	"github.com/Ammar-Ma-Eid/QAIU-Website/web"
)

// crudHandlers defines the standard CRUD handler methods.
type crudHandlers struct {
	List     http.HandlerFunc
	NewForm  http.HandlerFunc
	Create   http.HandlerFunc
	EditForm http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a resource.
// Routes: GET /, GET /new, POST /, GET /{id}, PUT /{id}, POST /{id}, DELETE /{id}
func registerCRUD(r chi.Router, base, baseID string, h crudHandlers) {
	r.Get(base, h.List)
	r.Get(base+handler.RouteSuffixNew, h.NewForm)
	r.Post(base, h.Create)
	r.Get(baseID, h.EditForm)
	r.Put(baseID, h.Update)
	r.Post(baseID, h.Update) // HTML forms can't send PUT
	r.Delete(baseID, h.Delete)
	r.Post(baseID+"/delete", h.Delete) // HTML forms can't send DELETE
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "clubsite - QAIU club website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_DB_PATH           SQLite database path (default: ./data/club.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_ADMIN_EMAIL       Bootstrap admin email (created if no users exist)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_ADMIN_PASSWORD    Bootstrap admin password\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUB_REDIS_URL         Redis URL for the page cache (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := version.Get()
		_, _ = fmt.Printf("clubsite %s (commit: %s, built: %s)\n", info.Version, info.GitCommit, info.BuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	ctx := context.Background()
	queries := store.New(db)
	if err := queries.Seed(ctx, store.SeedParams{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		AdminName:     "QAIU Admin",
		Demo:          cfg.DoSeed,
	}); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Page cache: Redis when configured, in-process memory otherwise
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	var pageCache cache.Cache
	if cfg.UseRedisCache() {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.CachePrefix, cacheTTL)
		if err != nil {
			slog.Warn("Redis unavailable, using memory page cache", "error", err)
			pageCache = cache.NewMemoryCache(cacheTTL)
		} else {
			slog.Info("page cache initialized", "backend", "redis", "url", cfg.RedisURL)
			pageCache = redisCache
		}
	} else {
		pageCache = cache.NewMemoryCache(cacheTTL)
		slog.Info("page cache initialized", "backend", "memory")
	}
	defer func() {
		if err := pageCache.Close(); err != nil {
			slog.Error("error closing page cache", "error", err)
		}
	}()

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	recorder := activity.NewRecorder(queries, logger)
	content := service.NewContentService(queries, recorder, pageCache, logger)

	// Hourly activity log prune
	sched := scheduler.New(recorder, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Router and middleware stack
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Timeout(30 * time.Second))

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized", "hsts", !cfg.IsDevelopment())

	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized")

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)

	// Handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection, []byte(cfg.SessionSecret))
	adminHandler := handler.NewAdminHandler(db, recorder, renderer)
	memberHandler := handler.NewMemberHandler(db, content, renderer)
	eventHandler := handler.NewEventHandler(db, content, renderer)
	postHandler := handler.NewPostHandler(db, content, renderer)
	glossaryHandler := handler.NewGlossaryHandler(db, content, renderer)
	contactHandler := handler.NewContactHandler(db, content, renderer)
	frontendHandler := handler.NewFrontendHandler(db, content, renderer, pageCache, cacheTTL)

	// Public frontend routes
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteEvents, frontendHandler.Events)
	r.Get(handler.RouteEvents+handler.RouteParamID, frontendHandler.Event)
	r.Get(handler.RouteBlog, frontendHandler.Blog)
	r.Get(handler.RouteBlog+handler.RouteParamSlug, frontendHandler.BlogPost)
	r.Get(handler.RouteGlossary, frontendHandler.Glossary)

	// Contact form (public, CSRF-protected submission)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteContact, frontendHandler.ContactForm)
		r.Post(handler.RouteContact, frontendHandler.Contact)
	})

	// Auth routes (public, with CSRF and login rate limiting)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteLogout, authHandler.Logout)
		r.Post(handler.RouteLogout, authHandler.Logout)
	})

	// Admin routes (session auth, admin allowlist, CSRF)
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, db))
		r.Use(middleware.RequireAdmin())

		r.Get(handler.RouteRoot, adminHandler.Dashboard)
		r.Get("/activities.json", adminHandler.ActivitiesJSON)
		r.Post(handler.RouteActivities+"/clear", adminHandler.ClearActivities)

		registerCRUD(r, handler.RouteMembers, handler.RouteMembersID, crudHandlers{
			List: memberHandler.List, NewForm: memberHandler.NewForm, Create: memberHandler.Create,
			EditForm: memberHandler.EditForm, Update: memberHandler.Update, Delete: memberHandler.Delete,
		})
		registerCRUD(r, handler.RouteEvents, handler.RouteEventsID, crudHandlers{
			List: eventHandler.List, NewForm: eventHandler.NewForm, Create: eventHandler.Create,
			EditForm: eventHandler.EditForm, Update: eventHandler.Update, Delete: eventHandler.Delete,
		})
		registerCRUD(r, handler.RoutePosts, handler.RoutePostsID, crudHandlers{
			List: postHandler.List, NewForm: postHandler.NewForm, Create: postHandler.Create,
			EditForm: postHandler.EditForm, Update: postHandler.Update, Delete: postHandler.Delete,
		})
		registerCRUD(r, handler.RouteGlossary, handler.RouteGlossaryID, crudHandlers{
			List: glossaryHandler.List, NewForm: glossaryHandler.NewForm, Create: glossaryHandler.Create,
			EditForm: glossaryHandler.EditForm, Update: glossaryHandler.Update, Delete: glossaryHandler.Delete,
		})

		r.Get(handler.RouteMessages, contactHandler.List)
		r.Delete(handler.RouteMessagesID, contactHandler.Delete)
		r.Post(handler.RouteMessagesID+"/delete", contactHandler.Delete) // HTML forms can't send DELETE
	})

	// Token-based JSON API. Exempt from CSRF: bearer tokens cannot be
	// forged cross-site.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SkipCSRF("/api/auth/login", "/api/auth/check"))
		r.Use(csrfMiddleware)
		r.Post("/api/auth/login", authHandler.APILogin)
		r.Get("/api/auth/check", authHandler.AuthCheck)
	})

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
