package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tt := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "identical points",
			lat1: -23.5505, lon1: -46.6333,
			lat2: -23.5505, lon2: -46.6333,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "sao paulo to rio de janeiro",
			lat1: -23.5505, lon1: -46.6333,
			lat2: -22.9068, lon2: -43.1729,
			want: 359, tolerance: 2,
		},
		{
			name: "one degree of latitude at the equator",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want: 111.19, tolerance: 0.1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Fatalf("got %f, want %f +- %f", got, tc.want, tc.tolerance)
			}
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729)
	b := DistanceKm(-22.9068, -43.1729, -23.5505, -46.6333)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance is not symmetric: %f vs %f", a, b)
	}
}
