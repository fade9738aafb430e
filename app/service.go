package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/plantops/gspmon/api/dashboard"
	"github.com/plantops/gspmon/api/sites"
	"github.com/plantops/gspmon/config"
	"github.com/plantops/gspmon/core/board"
	coreevents "github.com/plantops/gspmon/core/events"
	coremetrics "github.com/plantops/gspmon/core/metrics"
	"github.com/plantops/gspmon/core/status"
	"github.com/plantops/gspmon/feed"
	"github.com/plantops/gspmon/infra/logger"
	"github.com/plantops/gspmon/infra/metrics"
	"github.com/plantops/gspmon/internal/eventbus"
	"github.com/plantops/gspmon/render"
)

// Service wires the snapshot feed, the metric sinks and the dashboard
// HTTP server.
type Service struct {
	cfg     *config.Config
	builder *board.Builder
	feed    *feed.Feed
	bus     *eventbus.Bus[coreevents.SnapshotEvent]
	store   *status.MemoryStore
	sink    coremetrics.MetricsSink
	srv     *http.Server
	log     logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	builder, err := board.NewBuilder(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("board builder: %w", err)
	}

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New[coreevents.SnapshotEvent]()
	store := status.NewMemoryStore()

	mux := http.NewServeMux()
	mux.Handle("/api/board/snapshot", dashboard.NewSnapshotHandler(builder))
	mux.Handle("/api/board/status", dashboard.NewFeedStatusHandler(store))
	mux.Handle("/api/sites", sites.NewListHandler())
	mux.Handle("/", dashboard.NewPageHandler(builder, render.DefaultTheme()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	return &Service{
		cfg:     cfg,
		builder: builder,
		feed:    feed.New(cfg.Feed, builder, bus),
		bus:     bus,
		store:   store,
		sink:    sink,
		srv:     srv,
		log:     logg,
	}, nil
}

// Run starts the service and blocks until the context is cancelled or
// the HTTP server fails.
func (s *Service) Run(ctx context.Context) error {
	if s.sink != nil {
		metrics.StartEventCollector(ctx, s.bus, s.sink)
	}
	status.Listen(ctx, s.bus, s.store)
	go s.feed.Start(ctx)
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(s.cfg.Server.ShutdownSeconds)*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()
	s.log.Infof("dashboard listening on %s", s.cfg.Server.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
