// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mxrtinss/equipe403/internal/config"
	"github.com/mxrtinss/equipe403/internal/db"
	"github.com/mxrtinss/equipe403/internal/db/jsondb"
	"github.com/mxrtinss/equipe403/internal/db/kvdb"
	"github.com/mxrtinss/equipe403/internal/discover"
	"github.com/mxrtinss/equipe403/internal/server"
	"github.com/mxrtinss/equipe403/internal/source"
)

func main() {
	var (
		serviceName = flag.String("service-name", "event-discovery", "otel service name")
		addr        = flag.String("addr", "0.0.0.0:8080", "default server address")
		dbStr       = flag.String("db", "kvdb://testdata/events.db", "database connection string")
		cfgPath     = flag.String("config", "config.yaml", "path to the source configuration")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", *addr)
	logger.Info("otlp/gRPC", "address", *otlpAddr, "service", *serviceName)

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Error("unable to load configuration", "path", *cfgPath, "error", err)
		os.Exit(1)
	}

	var (
		eventStore    db.EventStore
		favoriteStore db.FavoriteStore
	)

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "kvdb":
		path := u.Host + u.Path
		kdb, err := bolt.Open(path, 0600, nil)
		if err != nil {
			logger.Error("could not open database", "path", path, "error", err)
			os.Exit(1)
		}
		defer kdb.Close()

		eventStore, err = kvdb.NewEventStore(kdb)
		if err != nil {
			logger.Error("could not initialize event bucket", "error", err)
			os.Exit(1)
		}
		favoriteStore, err = kvdb.NewFavoriteStore(kdb)
		if err != nil {
			logger.Error("could not initialize favorite bucket", "error", err)
			os.Exit(1)
		}
	case "jsondb":
		dir := u.Host + u.Path
		eventStore, err = jsondb.NewEventStore(filepath.Join(dir, "events.json"))
		if err != nil {
			logger.Error("could not initialize event store", "error", err)
			os.Exit(1)
		}
		favoriteStore, err = jsondb.NewFavoriteStore(filepath.Join(dir, "favorites.json"))
		if err != nil {
			logger.Error("could not initialize favorite store", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	remote, err := source.NewFromConfig(cfg.Source)
	if err != nil {
		logger.Error("could not build remote catalog source", "error", err)
		os.Exit(1)
	}
	finder := discover.NewFinder(remote, source.NewLocal(eventStore))

	srv := &http.Server{
		Addr: *addr,
		Handler: server.NewServer(
			*serviceName,
			cfg.Discovery.DefaultRadiusKm,
			finder,
			eventStore,
			favoriteStore,
		),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
