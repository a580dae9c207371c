package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/model"
)

// FavoriteStore keeps favorite snapshots in a JSON file, keyed by
// user and event.
type FavoriteStore struct {
	filename  string
	mu        sync.RWMutex
	favorites map[string]*model.Favorite
}

func NewFavoriteStore(filename string) (*FavoriteStore, error) {
	store := &FavoriteStore{
		filename:  filename,
		favorites: make(map[string]*model.Favorite),
	}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

func favoriteKey(userID, eventID string) string {
	return userID + "/" + eventID
}

func (s *FavoriteStore) CreateFavorite(ctx context.Context, fav *model.Favorite) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateFavorite")
	defer span.End()

	if fav.UserID == "" || fav.EventID == "" {
		err := errors.New("user ID and event ID are required")
		span.RecordError(err)
		return err
	}

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	if fav.FavoritedAt == nil {
		now := time.Now()
		fav.FavoritedAt = &now
	}
	s.favorites[favoriteKey(fav.UserID, fav.EventID)] = fav

	return s.saveToFile(ctx)
}

func (s *FavoriteStore) DeleteFavorite(ctx context.Context, userID, eventID string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteFavorite")
	defer span.End()

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	key := favoriteKey(userID, eventID)
	if _, ok := s.favorites[key]; !ok {
		span.RecordError(model.ErrNotFound)
		return model.ErrNotFound
	}
	delete(s.favorites, key)

	return s.saveToFile(ctx)
}

func (s *FavoriteStore) ListFavoritesByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListFavoritesByUser")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	var list []*model.Favorite
	for _, fav := range s.favorites {
		if fav.UserID == userID {
			list = append(list, fav)
		}
	}
	return list, nil
}

// ListFavorites returns every favorite regardless of owner. Used by
// the convert tool.
func (s *FavoriteStore) ListFavorites(ctx context.Context) ([]*model.Favorite, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListFavorites")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	list := make([]*model.Favorite, 0, len(s.favorites))
	for _, fav := range s.favorites {
		list = append(list, fav)
	}
	return list, nil
}

func (s *FavoriteStore) DeleteFavoritesByUser(ctx context.Context, userID string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteFavoritesByUser")
	defer span.End()

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	for key, fav := range s.favorites {
		if fav.UserID == userID {
			delete(s.favorites, key)
		}
	}

	return s.saveToFile(ctx)
}

func (s *FavoriteStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(s.favorites, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := os.WriteFile(s.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *FavoriteStore) loadFromFile() error {
	if _, err := os.Stat(s.filename); os.IsNotExist(err) {
		return nil
	}

	fileData, err := os.ReadFile(s.filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Unmarshal(fileData, &s.favorites)
}
