package paymentapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/paymentapi/handlers"
	"go-payment/internal/paymentapi/middleware"
	"go-payment/pkg/logging"

	"github.com/go-chi/chi/v5"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

// New builds the payment API. metricsHandler is mounted on /metrics when not nil.
func New(
	cfg Config,
	processor handlers.PaymentProcessor,
	metricsHandler http.Handler,
	logger *logging.ZapLogger,
) *Server {
	srv := &http.Server{
		Addr: cfg.ServerAddress,
		Handler: createMux(
			processor,
			metricsHandler,
			logger,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	res := &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}

	return res
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run() error {
	s.logger.InfoCtx(context.Background(), "Starting server at "+s.cfg.ServerAddress)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func createMux(
	processor handlers.PaymentProcessor,
	metricsHandler http.Handler,
	logger *logging.ZapLogger,
) *chi.Mux {
	cardPaymentHandler := handlers.NewCardPaymentHandler(processor, logger)
	slipPaymentHandler := handlers.NewSlipPaymentHandler(processor, logger)
	brandsGettingHandler := handlers.NewBrandsGettingHandler(logger)

	router := chi.NewRouter()
	router.Use(
		middleware.NewLoggerContext().CreateHandler,
		middleware.NewPanicRecover(logger).CreateHandler,
	)

	router.Post(paymentprotocol.CardPaymentPath, cardPaymentHandler.ServeHTTP)
	router.Post(paymentprotocol.SlipPaymentPath, slipPaymentHandler.ServeHTTP)
	router.Get(paymentprotocol.BrandsPath, brandsGettingHandler.ServeHTTP)

	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	return router
}
