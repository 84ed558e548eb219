package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	accessService "github.com/reshetovitsme/gallery-feed/internal/modules/access/service"
	"github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	feedService "github.com/reshetovitsme/gallery-feed/internal/modules/feed/service"
	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	"github.com/reshetovitsme/gallery-feed/internal/shared/errors"
	sloghttp "github.com/samber/slog-http"
)

// cdnMaxAge keeps shared caches below the lifetime of signed media URLs
const cdnMaxAge = 60

// FeedReader produces the canonical feed
type FeedReader interface {
	GetFeed(ctx context.Context, req feedService.Request) ([]domain.Item, error)
}

// Server handles HTTP requests for gallery feeds
type Server struct {
	cfg    *config.Config
	feeds  FeedReader
	guard  *accessService.Guard
	logger *slog.Logger
	server *http.Server
}

// New creates a new HTTP server listening on cfg.HTTPPort
func New(cfg *config.Config, feeds FeedReader, guard *accessService.Guard) *Server {
	s := &Server{
		cfg:    cfg,
		feeds:  feeds,
		guard:  guard,
		logger: slog.Default(),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// SetLogger sets the logger. It must be called before Start.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.server.Handler = s.Handler()
}

// Handler builds the router with logging and recovery middleware
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(sloghttp.New(s.logger))
	r.Use(sloghttp.Recovery)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))

	r.Get("/feed", s.handleFeed)
	r.Get("/api/feed", s.handleFeed)
	r.Get("/feed.rss", s.handleSyndication(formatRSS))
	r.Get("/feed.atom", s.handleSyndication(formatAtom))
	r.Get("/health", s.handleHealth)
	r.Get("/api/health", s.handleHealth)
	r.Get("/", s.handleRoot)

	return r
}

// Start serves until Shutdown. A Shutdown that lands first makes Start
// return nil without listening.
func (s *Server) Start() error {
	s.logger.Info("Gallery feed server starting", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func feedRequest(r *http.Request) feedService.Request {
	q := r.URL.Query()
	// Unparseable limits fall back to the default page size.
	limit, _ := strconv.Atoi(q.Get("limit"))
	return feedService.Request{
		DatabaseID: q.Get("database_id"),
		Status:     q.Get("status"),
		Limit:      limit,
	}
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	req := feedRequest(r)
	items, err := s.feeds.GetFeed(r.Context(), req)
	if err != nil {
		s.writeError(w, req, err)
		return
	}

	w.Header().Set("CDN-Cache-Control", fmt.Sprintf("max-age=0, s-maxage=%d", cdnMaxAge))
	writeJSON(w, http.StatusOK, domain.FeedResponse{Items: domain.ToWire(items)})
}

type feedFormat int

const (
	formatRSS feedFormat = iota
	formatAtom
)

func (s *Server) handleSyndication(format feedFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := feedRequest(r)
		items, err := s.feeds.GetFeed(r.Context(), req)
		if err != nil {
			s.writeError(w, req, err)
			return
		}

		link := fmt.Sprintf("%s://%s%s", getScheme(r), r.Host, r.URL.RequestURI())
		feed := feedService.Syndicate(req.DatabaseID, link, items)

		var (
			body        string
			contentType string
		)
		switch format {
		case formatAtom:
			body, err = feed.ToAtom()
			contentType = "application/atom+xml; charset=utf-8"
		default:
			body, err = feed.ToRss()
			contentType = "application/rss+xml; charset=utf-8"
		}
		if err != nil {
			s.logger.Error("Error rendering feed", "database_id", req.DatabaseID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to render feed"})
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto status codes. Upstream messages
// are passed through to the client.
func (s *Server) writeError(w http.ResponseWriter, req feedService.Request, err error) {
	switch {
	case errors.Is(err, errors.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, errors.ErrAccessDenied):
		s.logger.Warn("Database rejected by allow-list", "database_id", req.DatabaseID)
		writeJSON(w, http.StatusForbidden, errorBody{Error: errors.ErrAccessDenied.Error()})
	default:
		s.logger.Error("Error building feed", "database_id", req.DatabaseID, "error", err)
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error"
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: msg})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.guard.Diagnose(r.URL.Query().Get("database_id"), s.cfg.AllowedRaw, s.cfg.NotionToken != "")
	report.Domain = r.Host
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Gallery Feed</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Gallery Feed Service</h1>
    <div class="info">
        <p>This service turns a database of posts into a media gallery feed.</p>
        <p>JSON: <code>/feed?database_id={id}&amp;status={label}&amp;limit={1..100}</code></p>
        <p>RSS: <code>/feed.rss?database_id={id}</code> &middot; Atom: <code>/feed.atom?database_id={id}</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
