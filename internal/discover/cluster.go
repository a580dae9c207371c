// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package discover

import (
	"fmt"
	"math"

	"github.com/mxrtinss/equipe403/internal/model"
)

const (
	// Coordinates are keyed at 6 decimal places, roughly 0.11 m.
	// Events closer than that share a marker group.
	groupKeyFormat = "%.6f,%.6f"

	// offsetRadiusDeg is the ring the members of a group are spread
	// over, roughly 33 m.
	offsetRadiusDeg = 0.0003
)

// GroupAndOffset clusters events sharing (near-)identical coordinates
// and spreads each cluster over a small circle so map pins do not
// overlap. The layout only depends on the input order, so re-rendering
// the same list never moves a pin. Records without a location carry no
// renderable position and are left out.
func GroupAndOffset(records []*model.Event) []*model.Marker {
	groupSize := make(map[string]int, len(records))
	for _, e := range records {
		if !e.HasLocation() {
			continue
		}
		groupSize[groupKey(e)]++
	}

	seen := make(map[string]int, len(groupSize))
	markers := make([]*model.Marker, 0, len(records))
	for _, e := range records {
		if !e.HasLocation() {
			continue
		}
		key := groupKey(e)
		n := groupSize[key]
		i := seen[key]
		seen[key]++

		m := &model.Marker{
			Event:           *e,
			RenderLatitude:  *e.Latitude,
			RenderLongitude: *e.Longitude,
			GroupSize:       n,
			GroupIndex:      i,
		}
		if n > 1 {
			angle := float64(i) * (2 * math.Pi / float64(n))
			m.RenderLatitude = *e.Latitude + offsetRadiusDeg*math.Cos(angle)
			m.RenderLongitude = *e.Longitude + offsetRadiusDeg*math.Sin(angle)
		}
		markers = append(markers, m)
	}
	return markers
}

func groupKey(e *model.Event) string {
	return fmt.Sprintf(groupKeyFormat, *e.Latitude, *e.Longitude)
}
