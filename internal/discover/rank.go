// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package discover

import (
	"sort"

	"github.com/mxrtinss/equipe403/internal/model"
)

// Rank sorts records ascending by distance. Records without a distance
// sort after all numeric values. The sort is stable so that records
// with equal or unknown distances keep their relative input order.
func Rank(records []*model.Event) []*model.Event {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := records[i].DistanceKm, records[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
	return records
}
