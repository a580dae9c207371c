package model

// Origin is the position a discovery request is anchored to. It is
// immutable for the lifetime of one request.
type Origin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Event is the canonical record every upstream source is normalized
// into. Optional fields stay absent when the source does not supply
// them, so filters can tell "empty" from "unknown". Latitude and
// Longitude come both-or-neither; DistanceKm is nil until the radius
// filter ran against a known origin.
type Event struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	StartDate  string      `json:"start_date,omitempty"`
	ImageURL   string      `json:"image_url,omitempty"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	VenueName  string      `json:"venue_name,omitempty"`
	Address    string      `json:"address,omitempty"`
	City       string      `json:"city,omitempty"`
	Region     string      `json:"region,omitempty"`
	SourceURL  string      `json:"source_url,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Category   string      `json:"category,omitempty"`
	DistanceKm *float64    `json:"distance_km,omitempty"`
}

func (e *Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Marker is an Event placed on the map. Render coordinates differ from
// the actual coordinates when several events share one spot.
type Marker struct {
	Event
	RenderLatitude  float64 `json:"render_latitude"`
	RenderLongitude float64 `json:"render_longitude"`
	GroupSize       int     `json:"group_size"`
	GroupIndex      int     `json:"group_index"`
}
