package discover

import (
	"testing"

	"github.com/mxrtinss/equipe403/internal/model"
)

func TestSearch(t *testing.T) {
	records := []*model.Event{
		{ID: "1", Title: "Downtown Jazz Night", City: "Campinas", Category: "Jazz Festival"},
		{ID: "2", Title: "Tech Meetup", City: "São Paulo", VenueName: "Expo Center", Category: "Technology"},
		{ID: "3", Title: "Street Food Fair", City: "São Paulo", Category: "Food"},
	}

	tt := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{
			name:    "empty query keeps everything",
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "query matches category case-insensitively",
			query:   "jazz",
			wantIDs: []string{"1"},
		},
		{
			name:    "query matches city",
			query:   "são paulo",
			wantIDs: []string{"2", "3"},
		},
		{
			name:    "query matches venue",
			query:   "expo",
			wantIDs: []string{"2"},
		},
		{
			name:     "category all never excludes",
			category: "all",
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "category tag filters exactly",
			category: "food",
			wantIDs:  []string{"3"},
		},
		{
			name:     "query and category compose by AND",
			query:    "são paulo",
			category: "Technology",
			wantIDs:  []string{"2"},
		},
		{
			name:    "no match is an empty, non-nil result",
			query:   "opera",
			wantIDs: []string{},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(records, tc.query, tc.category)
			if got == nil {
				t.Fatal("result must not be nil")
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
