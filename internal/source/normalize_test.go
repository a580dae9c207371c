package source

import "testing"

func TestPickTitle(t *testing.T) {
	tt := []struct {
		name        string
		title, alt  string
		want        string
	}{
		{name: "title wins over name", title: "Show A", alt: "Show B", want: "Show A"},
		{name: "name when title missing", alt: "Show B", want: "Show B"},
		{name: "fallback label when both missing", want: titleFallback},
		{name: "whitespace counts as missing", title: "   ", alt: "Show B", want: "Show B"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := pickTitle(tc.title, tc.alt); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseCoord(t *testing.T) {
	tt := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{name: "float", in: -23.5505, want: -23.5505, ok: true},
		{name: "numeric string", in: "-46.6333", want: -46.6333, ok: true},
		{name: "numeric string with spaces", in: " 12.5 ", want: 12.5, ok: true},
		{name: "junk string", in: "not-a-number", ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "bool", in: true, ok: false},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseCoord(tc.in)
			if ok != tc.ok {
				t.Fatalf("got ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("got %f, want %f", got, tc.want)
			}
		})
	}
}

func TestCoordPairBothOrNeither(t *testing.T) {
	if lat, lon := coordPair("-23.55", "-46.63"); lat == nil || lon == nil {
		t.Fatal("valid pair must yield both coordinates")
	}
	if lat, lon := coordPair("-23.55", nil); lat != nil || lon != nil {
		t.Fatal("half a pair must yield no location")
	}
	if lat, lon := coordPair("junk", "-46.63"); lat != nil || lon != nil {
		t.Fatal("unparseable latitude must yield no location")
	}
}

func TestDisplayDate(t *testing.T) {
	tt := []struct {
		name        string
		date, clock string
		want        string
	}{
		{name: "date and time composed", date: "2025-11-01", clock: "18:00:00", want: "01 Nov 2025 18:00"},
		{name: "date only", date: "2025-11-01", want: "01 Nov 2025 00:00"},
		{name: "sympla timestamp", date: "2025-11-01 18:30:00", want: "01 Nov 2025 18:30"},
		{name: "missing date is explicit", want: dateUnknown},
		{name: "unparseable input passes through", date: "next friday", want: "next friday"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := displayDate(tc.date, tc.clock); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
