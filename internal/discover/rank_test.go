package discover

import (
	"testing"

	"github.com/mxrtinss/equipe403/internal/model"
)

func withDistance(id string, km float64) *model.Event {
	return &model.Event{ID: id, Title: id, DistanceKm: &km}
}

func TestRank(t *testing.T) {
	records := []*model.Event{
		withDistance("five", 5),
		{ID: "unknown", Title: "unknown"},
		withDistance("one", 1),
	}

	got := Rank(records)

	want := []string{"one", "five", "unknown"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRankIsStable(t *testing.T) {
	records := []*model.Event{
		withDistance("equal-first", 3),
		withDistance("equal-second", 3),
		{ID: "unknown-first", Title: "unknown-first"},
		{ID: "unknown-second", Title: "unknown-second"},
		withDistance("closest", 1),
	}

	got := Rank(records)

	want := []string{"closest", "equal-first", "equal-second", "unknown-first", "unknown-second"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}
