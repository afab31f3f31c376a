package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"varchess/internal/server/game"
)

// Server 把 /api/* 和静态资源挂在同一个 mux 上，并负责监听与优雅关闭。
type Server struct {
	h http.Handler

	mu  sync.Mutex
	srv *http.Server
}

func NewServer(m *game.Manager, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(m))
	RegisterStaticRoutes(mux, webDir, m)
	return &Server{h: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.h.ServeHTTP(w, r)
}

// Listen blocks until the server stops; a Shutdown is not reported as an error.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
