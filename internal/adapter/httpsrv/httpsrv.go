package httpsrv

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/khmm12/chats-service/internal/usecase"
)

const ChatPath = "/chatclient"

type chatUC interface {
	Execute(ctx context.Context, cmd usecase.ChatCommand) (string, error)
}

type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Server struct {
	srv      *http.Server
	router   chi.Router
	listener net.Listener
}

type ServerOptions struct {
	Logger         *slog.Logger
	Chat           chatUC
	Observer       RequestObserver
	MetricsHandler http.Handler
	MetricsPath    string
}

func NewServer(addr string, opts ServerOptions) *Server {
	router := chi.NewRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	router.Use(
		traceMiddleware,
		accessLogMiddleware(opts.Logger, opts.Observer),
		middleware.Recoverer,
	)

	router.Get("/health", healthHandler())
	router.Post(ChatPath, chatHandler(opts.Logger, opts.Chat))

	if opts.MetricsHandler != nil {
		router.Method(http.MethodGet, opts.MetricsPath, opts.MetricsHandler)
	}

	return &Server{
		srv:    srv,
		router: router,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the listening socket so bind errors surface before the process registers itself.
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	s.listener = l

	return nil
}

func (s *Server) ListenAddr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.srv.Addr
}

func (s *Server) Start() error {
	var err error

	if s.listener != nil {
		err = s.srv.Serve(s.listener)
	} else {
		err = s.srv.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown also closes a listener bound by Listen that Start never took over.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)

	if s.listener != nil {
		if cerr := s.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = errors.Join(err, cerr)
		}
	}

	return err
}
