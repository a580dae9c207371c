// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package model

import "time"

// Favorite is a point-in-time copy of an event, owned by exactly one
// user. It does not follow later changes to the source event.
type Favorite struct {
	UserID      string     `json:"user_id"`
	EventID     string     `json:"event_id"`
	Snapshot    Event      `json:"snapshot"`
	FavoritedAt *time.Time `json:"favorited_at,omitempty"`
}
