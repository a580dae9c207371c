package model

import (
	"time"

	"github.com/google/uuid"
)

// UserEvent is an event authored inside the app. It lives in the local
// store until its owner deletes it.
type UserEvent struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   string     `json:"start_date,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	VenueName   string     `json:"venue_name,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	Region      string     `json:"region,omitempty"`
	Category    string     `json:"category,omitempty"`
}

// Canonical converts a stored user event into the shape the discovery
// pipeline works on. A record with only one coordinate of the pair is
// treated as having no location.
func (u *UserEvent) Canonical() *Event {
	e := &Event{
		ID:        u.ID.String(),
		Title:     u.Title,
		StartDate: u.StartDate,
		ImageURL:  u.ImageURL,
		VenueName: u.VenueName,
		Address:   u.Address,
		City:      u.City,
		Region:    u.Region,
		Category:  u.Category,
	}
	if u.Latitude != nil && u.Longitude != nil {
		lat, lon := *u.Latitude, *u.Longitude
		e.Latitude = &lat
		e.Longitude = &lon
	}
	return e
}
