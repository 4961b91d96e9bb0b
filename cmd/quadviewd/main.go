// Command quadviewd serves the quadrature engine over HTTP.
//
// Configuration comes from QUADVIEW_* environment variables (see
// httpapi.Config). The function catalog starts from the builtins; set
// QUADVIEW_CATALOG_FILE to merge extra expression-backed entries from a
// YAML file.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/quadview/quadview/catalog"
	"github.com/quadview/quadview/exprfn"
	"github.com/quadview/quadview/httpapi"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg, err := httpapi.LoadConfig()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	cat, err := buildCatalog(cfg)
	if err != nil {
		logger.Error("catalog", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpapi.NewServer(cfg, cat, logger).Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "functions", len(cat.List()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "err", err)
			os.Exit(1)
		}
	}
}

// newLogger builds a tinted slog logger at the configured level; an
// unknown level name falls back to info.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
	}))
}

// buildCatalog assembles the builtins plus any entries from the optional
// catalog file, compiled through the same expression whitelist the API
// uses.
func buildCatalog(cfg httpapi.Config) (*catalog.Catalog, error) {
	entries := catalog.Builtin()

	if cfg.CatalogFile != "" {
		compiler := exprfn.NewCompiler(cfg.ExprCacheTTL)
		extra, err := catalog.LoadFile(cfg.CatalogFile, compiler.Compile)
		if err != nil {
			return nil, err
		}
		entries = append(entries, extra...)
	}

	return catalog.New(entries...)
}
