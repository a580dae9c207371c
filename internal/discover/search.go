// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package discover

import (
	"strings"

	"github.com/mxrtinss/equipe403/internal/model"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Search narrows records by a case-insensitive substring match of query
// against title, city, venue and category, and by an exact category
// tag. An empty query matches everything, CategoryAll keeps every
// category. Both filters compose by logical AND and the input order is
// preserved.
func Search(records []*model.Event, query, category string) []*model.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.TrimSpace(category)
	out := make([]*model.Event, 0, len(records))
	for _, e := range records {
		if cat != "" && !strings.EqualFold(cat, CategoryAll) && !strings.EqualFold(cat, e.Category) {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(e.Title + " " + e.City + " " + e.VenueName + " " + e.Category)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
