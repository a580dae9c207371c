// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/model"
)

const bucketFavorite = "favorite_store"

func NewFavoriteStore(db *bolt.DB) (*FavoriteStore, error) {
	return &FavoriteStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketFavorite))
		return err
	})
}

type FavoriteStore struct {
	db *bolt.DB
}

// Keys are "<userID>/<eventID>" so one user's favorites form a
// contiguous key range. User IDs are opaque and may themselves contain
// the separator, so scans narrow by prefix but trust only the decoded
// owner field.
func favoriteKey(userID, eventID string) []byte {
	return []byte(userID + "/" + eventID)
}

func (s *FavoriteStore) CreateFavorite(ctx context.Context, fav *model.Favorite) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateFavorite")
	defer span.End()

	if fav.UserID == "" || fav.EventID == "" {
		err := errors.New("user ID and event ID are required")
		span.RecordError(err)
		return err
	}
	if fav.FavoritedAt == nil {
		now := time.Now()
		fav.FavoritedAt = &now
	}

	j, err := json.Marshal(fav)
	if err != nil {
		return err
	}

	span.AddEvent("Update bucket")
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketFavorite)).Put(favoriteKey(fav.UserID, fav.EventID), j)
	})
}

func (s *FavoriteStore) DeleteFavorite(ctx context.Context, userID, eventID string) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteFavorite")
	defer span.End()

	span.AddEvent("Update bucket")
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketFavorite))
		key := favoriteKey(userID, eventID)
		if bucket.Get(key) == nil {
			span.RecordError(model.ErrNotFound)
			return model.ErrNotFound
		}
		return bucket.Delete(key)
	})
}

func (s *FavoriteStore) ListFavoritesByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListFavoritesByUser")
	defer span.End()

	span.AddEvent("View bucket")
	var favorites []*model.Favorite
	prefix := []byte(userID + "/")
	return favorites, s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketFavorite)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			fav := &model.Favorite{}
			if err := json.Unmarshal(v, fav); err != nil {
				span.RecordError(err)
				return err
			}
			if fav.UserID != userID {
				continue
			}
			favorites = append(favorites, fav)
		}
		return nil
	})
}

func (s *FavoriteStore) DeleteFavoritesByUser(ctx context.Context, userID string) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteFavoritesByUser")
	defer span.End()

	span.AddEvent("Update bucket")
	prefix := []byte(userID + "/")
	return s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketFavorite)).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			fav := &model.Favorite{}
			if err := json.Unmarshal(v, fav); err != nil {
				span.RecordError(err)
				return err
			}
			if fav.UserID != userID {
				continue
			}
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}
