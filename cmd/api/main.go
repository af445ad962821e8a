package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/impilostore/orderdesk/internal/config"
	"github.com/impilostore/orderdesk/internal/httpx"
	"github.com/impilostore/orderdesk/internal/ledger"
	"github.com/impilostore/orderdesk/internal/mailer"
	"github.com/impilostore/orderdesk/internal/notify"
	"github.com/impilostore/orderdesk/internal/orders"
	"github.com/impilostore/orderdesk/internal/postgres"
	"github.com/impilostore/orderdesk/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB (unreachable storage is fatal at startup)
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("db schema", zap.Error(err))
	}
	repo := &orders.Repo{DB: db}

	// Redis totals cache (optional)
	var cache *redisx.TotalsCache
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		cache = &redisx.TotalsCache{RDB: rdb}
	}
	totals := &redisx.CachedTotals{Source: repo, Cache: cache}

	// Mailer (misconfiguration is logged, never fatal)
	var mail notify.Mailer
	if m, err := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.CompanyEmail,
	}); err != nil {
		log.Warn("mail disabled", zap.Error(err))
	} else {
		mail = m
	}

	// Sheets ledger (missing credentials degrade to a no-op)
	var sheets notify.Ledger
	if l := newLedger(ctx, cfg, totals, log); l != nil {
		sheets = l
	}

	fanout := &notify.Fanout{Ledger: sheets, Mailer: mail, Log: log}

	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{
		Store:  repo,
		Totals: totals,
		Cache:  cache,
		Fanout: fanout,
		Log:    log,
		Env:    cfg.Env,
	}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Info("HTTP listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("env", cfg.Env),
			zap.Bool("google_sheets", sheets != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}

func newLogger(cfg config.Config) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return log
}

// newLedger wires the sheets integration when credentials and a sheet id are
// present. In production a missing integration is worth a warning; in
// development it is the normal state.
func newLedger(ctx context.Context, cfg config.Config, totals *redisx.CachedTotals, log *zap.Logger) *ledger.Client {
	creds, err := cfg.SheetCredentials()
	if err != nil {
		log.Warn("sheets credentials unreadable, ledger disabled", zap.Error(err))
		return nil
	}
	if creds == nil || cfg.SheetID == "" {
		if cfg.IsProduction() {
			log.Warn("sheets integration not configured, ledger disabled")
		} else {
			log.Debug("sheets integration not configured")
		}
		return nil
	}
	l, err := ledger.New(ctx, creds, cfg.SheetID, totals.ProductTotals, log)
	if err != nil {
		log.Warn("sheets client init failed, ledger disabled", zap.Error(err))
		return nil
	}
	log.Info("google sheets ledger enabled", zap.String("sheet_id", cfg.SheetID))
	return l
}
