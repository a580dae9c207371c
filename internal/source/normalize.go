package source

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// dateUnknown is what a missing start date renders as. An empty
	// string would be swallowed silently by the UI.
	dateUnknown = "date unknown"

	// titleFallback labels records whose source omits a display name.
	titleFallback = "Untitled event"

	displayDateLayout = "02 Jan 2006 15:04"
)

// pickTitle prefers an explicit title over a name and falls back to a
// generic label when the source supplies neither.
func pickTitle(title, name string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return titleFallback
}

// parseCoord reads a coordinate that upstream may deliver as a number
// or as a numeric string.
func parseCoord(v any) (float64, bool) {
	switch c := v.(type) {
	case float64:
		return c, isFinite(c)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 0, false
		}
		return f, isFinite(f)
	default:
		return 0, false
	}
}

// coordPair returns both coordinates or neither. A record with only one
// parsable coordinate has no location.
func coordPair(lat, lon any) (*float64, *float64) {
	la, okLat := parseCoord(lat)
	lo, okLon := parseCoord(lon)
	if !okLat || !okLon {
		return nil, nil
	}
	return &la, &lo
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// displayDate composes a human-readable start date from the date and
// time fields a source delivers separately. Layouts are tried from most
// to least specific; input that matches none is passed through as-is
// rather than discarded.
func displayDate(date, clock string) string {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return dateUnknown
	}
	raw := date
	if clock != "" {
		raw = date + " " + clock
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return raw
}
