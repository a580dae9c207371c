// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package discover

import (
	"github.com/mxrtinss/equipe403/internal/geo"
	"github.com/mxrtinss/equipe403/internal/model"
)

// RadiusResult separates the retained records from the count of records
// that could not be radius-tested, so callers can explain to the user
// why totals do not add up.
type RadiusResult struct {
	Events     []*model.Event
	NoLocation int
}

// FilterByRadius attaches the distance from origin to every geolocated
// record and retains those within radiusKm. Distances supplied by an
// upstream source are not trusted; this is the single place distance is
// computed. Records without a location are excluded and counted.
func FilterByRadius(records []*model.Event, origin model.Origin, radiusKm float64) RadiusResult {
	res := RadiusResult{Events: make([]*model.Event, 0, len(records))}
	for _, e := range records {
		if !e.HasLocation() {
			res.NoLocation++
			continue
		}
		d := geo.DistanceKm(origin.Latitude, origin.Longitude, *e.Latitude, *e.Longitude)
		if d > radiusKm {
			continue
		}
		e.DistanceKm = &d
		res.Events = append(res.Events, e)
	}
	return res
}
