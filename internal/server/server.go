// Package server exposes the image cache over HTTP so that issued handles can be
// used directly as image sources.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
)

const (
	maxRequestBody  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Cache is the part of the image cache served over HTTP.
type Cache interface {
	Preload(ctx context.Context, url string) string
	PreloadAll(ctx context.Context, urls []string) []string
	Resolve(handle string) ([]byte, bool)
	ExpireStaleEntries() int
	Clear()
	Stats() cache.Stats
}

type Server struct {
	cache  Cache
	logger *zerolog.Logger
	maxAge time.Duration
	mux    *http.ServeMux
}

// New wires the routes. maxAge bounds the browser cache lifetime of served blobs.
func New(c Cache, logger *zerolog.Logger, maxAge time.Duration) *Server {
	s := &Server{cache: c, logger: logger, maxAge: maxAge, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /blob/{id}", s.blob)
	s.mux.HandleFunc("GET /preload", s.preload)
	s.mux.HandleFunc("POST /preload", s.preloadAll)
	s.mux.HandleFunc("GET /stats", s.stats)
	s.mux.HandleFunc("DELETE /cache", s.clear)
	s.mux.HandleFunc("POST /cache/expire", s.expire)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.withLogging(s.mux)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server is running")

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	s.logger.Info().Msg("http server is stopped")
	return nil
}

func (s *Server) blob(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.cache.Resolve(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "handle is unknown or revoked")
		return
	}

	h := w.Header()
	h.Set("Content-Type", http.DetectContentType(payload))
	h.Set("Content-Length", strconv.Itoa(len(payload)))
	h.Set("Cache-Control", "private, max-age="+strconv.Itoa(int(s.maxAge.Seconds())))
	_, _ = w.Write(payload)
}

func (s *Server) preload(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	handle := s.cache.Preload(r.Context(), url)
	writeJSON(w, http.StatusOK, preloadResponse{Handle: handle, Cached: handle != url})
}

func (s *Server) preloadAll(w http.ResponseWriter, r *http.Request) {
	var req preloadRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err == nil {
		err = easyjson.Unmarshal(body, &req)
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("malformed preload body")
		writeError(w, http.StatusBadRequest, "malformed body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, preloadAllResponse{Handles: s.cache.PreloadAll(r.Context(), req.URLs)})
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newStatsResponse(s.cache.Stats()))
}

func (s *Server) clear(w http.ResponseWriter, _ *http.Request) {
	s.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) expire(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, expireResponse{Expired: s.cache.ExpireStaleEntries()})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		logger := s.logger.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()
		next.ServeHTTP(rw, r.WithContext(logger.WithContext(r.Context())))

		logger.Debug().
			Int("status", rw.status).
			Str("elapsed", time.Since(start).String()).
			Msg("request served")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v easyjson.Marshaler) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = easyjson.MarshalToWriter(v, w)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
