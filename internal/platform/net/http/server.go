package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"gdpchart/internal/platform/config"
	"gdpchart/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions tunes the listener, read from API_* keys of the given Conf
type ServerOptions struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// ServerOptionsFrom reads ServerOptions with sane defaults
func ServerOptionsFrom(cfg config.Conf) ServerOptions {
	api := cfg.Prefix("API_")
	return ServerOptions{
		Addr:              api.MayString("ADDR", api.MayPort("PORT", ":4000")),
		ReadHeaderTimeout: api.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      api.MayDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       api.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		ShutdownTimeout:   api.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	opt ServerOptions
	mux *chi.Mux
	srv *stdhttp.Server

	mu    sync.Mutex
	bound string
}

// NewServer creates an http server; opts receive the *chi.Mux before any route is added
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	opt := ServerOptionsFrom(cfg)
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		opt: opt,
		mux: m,
		srv: &stdhttp.Server{
			Addr:              opt.Addr,
			Handler:           m,
			ReadHeaderTimeout: opt.ReadHeaderTimeout,
			WriteTimeout:      opt.WriteTimeout,
			IdleTimeout:       opt.IdleTimeout,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the bound address once listening, the configured one before
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != "" {
		return s.bound
	}
	return s.opt.Addr
}

// Run listens and serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opt.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()

	log := logger.Named("http")
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), s.opt.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("http shutting down")
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		<-errc
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
