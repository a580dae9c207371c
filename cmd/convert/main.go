// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

// Command convert migrates a jsondb data directory into a single kvdb
// file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/mxrtinss/equipe403/internal/db/jsondb"
	"github.com/mxrtinss/equipe403/internal/db/kvdb"
)

func main() {
	var (
		inputDir   = flag.String("input-dir", "testdata", "jsondb data directory")
		outputPath = flag.String("output", "output.db", "kvdb output file")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)

	ctx := context.Background()

	jEvents, err := jsondb.NewEventStore(filepath.Join(*inputDir, "events.json"))
	if err != nil {
		logger.Error("open json event store", "error", err)
		os.Exit(1)
	}
	jFavorites, err := jsondb.NewFavoriteStore(filepath.Join(*inputDir, "favorites.json"))
	if err != nil {
		logger.Error("open json favorite store", "error", err)
		os.Exit(1)
	}

	kdb, err := bolt.Open(*outputPath, 0600, nil)
	if err != nil {
		logger.Error("open kvdb", "path", *outputPath, "error", err)
		os.Exit(1)
	}
	defer kdb.Close()

	kEvents, err := kvdb.NewEventStore(kdb)
	if err != nil {
		logger.Error("initialize event bucket", "error", err)
		os.Exit(1)
	}
	kFavorites, err := kvdb.NewFavoriteStore(kdb)
	if err != nil {
		logger.Error("initialize favorite bucket", "error", err)
		os.Exit(1)
	}

	logger.Info("start converting")

	events, err := jEvents.ListEvents(ctx)
	if err != nil {
		logger.Error("list events", "error", err)
		os.Exit(1)
	}
	for _, event := range events {
		if _, err := kEvents.CreateEvent(ctx, event); err != nil {
			logger.Error("copy event", "id", event.ID, "error", err)
			os.Exit(1)
		}
	}

	favorites, err := jFavorites.ListFavorites(ctx)
	if err != nil {
		logger.Error("list favorites", "error", err)
		os.Exit(1)
	}
	for _, fav := range favorites {
		if err := kFavorites.CreateFavorite(ctx, fav); err != nil {
			logger.Error("copy favorite", "user", fav.UserID, "event", fav.EventID, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("finished converting", "events", len(events), "favorites", len(favorites))
}
