package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/yacchi/partymeta/decoder"
	"github.com/yacchi/partymeta/internal/config"
	"github.com/yacchi/partymeta/internal/metrics"
	"github.com/yacchi/partymeta/internal/snapshot"
	"github.com/yacchi/partymeta/metastore"
)

func runWatch(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var opts commonOptions
	opts.register(fs, cfg)
	metricsAddr := fs.String("metrics-addr", cfg.MetricsAddr, "listen address for /metrics (disabled when empty)")
	fs.Usage = printWatchHelp

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		printWatchHelp()
		return fmt.Errorf("exactly one snapshot file is required")
	}
	decode, err := opts.validate()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFile(ctx, fs.Arg(0), opts.Kind, decode, *metricsAddr, opts.logger(), out)
}

// watcher re-renders a store whenever a snapshot sync changes it.
type watcher struct {
	kind    string
	decode  decoder.Func
	store   *metastore.Store
	metrics *metrics.Metrics
	logger  zerolog.Logger
	out     io.Writer
}

func newWatcher(kind string, decode decoder.Func, logger zerolog.Logger, out io.Writer) *watcher {
	w := &watcher{
		kind:    kind,
		decode:  decode,
		store:   metastore.New(metastore.WithLogger(logger)),
		metrics: metrics.New(),
		logger:  logger,
		out:     out,
	}
	w.store.Subscribe(w.metrics.ObserveChange)
	return w
}

// apply syncs p into the store and prints the view if anything changed.
func (w *watcher) apply(p metastore.Patch) error {
	change := snapshot.Sync(w.store, p)
	if change.IsEmpty() {
		w.logger.Debug().Msg("snapshot unchanged")
		return nil
	}
	w.logger.Info().
		Strs("updated", change.Updated).
		Strs("removed", change.Removed).
		Msg("snapshot changed")
	return writeReport(w.out, render(w.kind, w.store, w.decode, w.logger, w.metrics.ObserveFailure))
}

func watchFile(ctx context.Context, path, kind string, decode decoder.Func, metricsAddr string, logger zerolog.Logger, out io.Writer) error {
	w := newWatcher(kind, decode, logger, out)

	p, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	if err := w.apply(p); err != nil {
		return err
	}

	if metricsAddr != "" {
		srv := serveMetrics(metricsAddr, w.metrics, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	updates := make(chan metastore.Patch, 1)
	stopWatch, err := snapshot.Watch(ctx, path, func(p metastore.Patch, err error) {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to reload snapshot")
			return
		}
		select {
		case updates <- p:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}
	defer stopWatch()

	logger.Info().Str("path", path).Str("kind", kind).Msg("watching snapshot")
	for {
		select {
		case p := <-updates:
			if err := w.apply(p); err != nil {
				return err
			}
		case <-ctx.Done():
			logger.Info().Msg("watch stopped")
			return nil
		}
	}
}

func serveMetrics(addr string, m *metrics.Metrics, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")
	return srv
}

func printWatchHelp() {
	fmt.Fprintln(os.Stderr, `partymeta watch - Re-decode a meta snapshot file whenever it changes

Usage:
  go tool partymeta watch [options] <snapshot.json>

Every write, create or rename of the file replaces the store contents with
the new snapshot. Changed keys are logged and the decoded view is printed.

Options:
  -kind string           Snapshot kind: party or member (default "member")
  -decoder string        Typed record decoder: json or mapstructure (default "json")
  -metrics-addr string   Listen address for /metrics (default $PARTYMETA_METRICS_ADDR)
  -log-level string      Log level (default $PARTYMETA_LOG_LEVEL or "info")
  -log-pretty            Console log output (default $PARTYMETA_LOG_PRETTY)`)
}
