// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"errors"
	"testing"

	"github.com/mxrtinss/equipe403/internal/model"
)

func newFavoriteStoreTest(t *testing.T) *FavoriteStore {
	t.Helper()
	store, err := NewFavoriteStore(openBolt(t))
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestFavoriteStoreRoundTrip(t *testing.T) {
	store := newFavoriteStoreTest(t)
	ctx := context.Background()

	fav := &model.Favorite{
		UserID:   "user-1",
		EventID:  "tm-1",
		Snapshot: model.Event{ID: "tm-1", Title: "Arena Rock Night"},
	}
	if err := store.CreateFavorite(ctx, fav); err != nil {
		t.Fatal(err)
	}
	if fav.FavoritedAt == nil {
		t.Fatal("create must stamp FavoritedAt")
	}

	list, err := store.ListFavoritesByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Snapshot.Title != "Arena Rock Night" {
		t.Fatalf("unexpected favorites: %+v", list)
	}
}

func TestFavoriteStoreRequiresKeys(t *testing.T) {
	store := newFavoriteStoreTest(t)
	if err := store.CreateFavorite(context.Background(), &model.Favorite{UserID: "user-1"}); err == nil {
		t.Fatal("favorite without an event ID must be rejected")
	}
}

func TestFavoriteStoreDelete(t *testing.T) {
	store := newFavoriteStoreTest(t)
	ctx := context.Background()

	if err := store.CreateFavorite(ctx, &model.Favorite{UserID: "user-1", EventID: "tm-1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteFavorite(ctx, "user-1", "tm-1"); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteFavorite(ctx, "user-1", "tm-1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFavoriteStoreScopedToUser(t *testing.T) {
	store := newFavoriteStoreTest(t)
	ctx := context.Background()

	for _, fav := range []*model.Favorite{
		{UserID: "user-1", EventID: "tm-1"},
		{UserID: "user-1", EventID: "tm-2"},
		{UserID: "user-2", EventID: "tm-1"},
	} {
		if err := store.CreateFavorite(ctx, fav); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.DeleteFavoritesByUser(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	mine, err := store.ListFavoritesByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 0 {
		t.Fatalf("got %d favorites, want 0 after the wipe", len(mine))
	}
	theirs, err := store.ListFavoritesByUser(ctx, "user-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(theirs) != 1 {
		t.Fatalf("got %d favorites, want the other user's entry intact", len(theirs))
	}
}

// User IDs are opaque caller-supplied strings, so one containing the key
// separator must not leak into another user's key range.
func TestFavoriteStoreIsolatesUserIDsWithSeparator(t *testing.T) {
	store := newFavoriteStoreTest(t)
	ctx := context.Background()

	if err := store.CreateFavorite(ctx, &model.Favorite{UserID: "a/b", EventID: "e1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateFavorite(ctx, &model.Favorite{UserID: "a", EventID: "e2"}); err != nil {
		t.Fatal(err)
	}

	list, err := store.ListFavoritesByUser(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].EventID != "e2" {
		t.Fatalf("user a must see only its own favorite, got %+v", list)
	}

	if err := store.DeleteFavoritesByUser(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	kept, err := store.ListFavoritesByUser(ctx, "a/b")
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != 1 || kept[0].EventID != "e1" {
		t.Fatalf("cascade for user a must not touch user a/b, got %+v", kept)
	}
}
