// Package api assembles and runs the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	accountservice "github.com/ledgerline/mpt-middleware/pkg/account/service"
	"github.com/ledgerline/mpt-middleware/pkg/app/httpserver"
	"github.com/ledgerline/mpt-middleware/pkg/config"
	mptservice "github.com/ledgerline/mpt-middleware/pkg/mpt/service"
	paymentservice "github.com/ledgerline/mpt-middleware/pkg/payment/service"
	"github.com/ledgerline/mpt-middleware/pkg/wallet"
	"github.com/ledgerline/mpt-middleware/pkg/xrpl"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("network", cfg.XRPL.Network),
	)

	vault, err := wallet.NewVault(cfg.Wallets.Seeds)
	if err != nil {
		return fmt.Errorf("build wallet vault: %w", err)
	}
	logger.Info("Wallet vault ready", zap.Int("accounts", vault.Size()))

	client := xrpl.NewClient(&cfg.XRPL, logger)
	if err := client.Connect(); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if cfg.XRPL.FaucetFunding {
		s.fundVault(client, vault, logger)
	}

	router := s.setupRouter(client, vault, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	return httpserver.ServeAndWait(ctx, logger, srv, cfg.Shutdown.Timeout)
}

// fundVault tops up every vault account from the network faucet. A
// funding failure is logged but does not abort startup; accounts that
// already exist on-ledger keep working.
func (s *Server) fundVault(client *xrpl.Client, vault *wallet.Vault, logger *zap.Logger) {
	for _, addr := range vault.Addresses() {
		w, _ := vault.Lookup(addr)
		if err := client.FundWallet(&w); err != nil {
			logger.Warn("Faucet funding failed", zap.String("address", addr), zap.Error(err))
			continue
		}
		logger.Info("Account funded from faucet", zap.String("address", addr))
	}
}

func (s *Server) setupRouter(client *xrpl.Client, vault *wallet.Vault, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	paymentSvc := paymentservice.NewLog(paymentservice.NewService(client, vault, logger), logger)
	paymentservice.RegisterRoutes(r, paymentSvc, logger)

	mptSvc := mptservice.NewLog(mptservice.NewService(client, vault, logger), logger)
	mptservice.RegisterRoutes(r, mptSvc, logger)

	accountSvc := accountservice.NewService(client, vault, logger)
	accountservice.RegisterRoutes(r, accountSvc, logger)

	return r
}
