package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mxrtinss/equipe403/internal/config"
	"github.com/mxrtinss/equipe403/internal/model"
)

const symplaSample = `{
  "data": [
    {
      "id": 4221337,
      "name": "Festival de Música",
      "start_date": "2025-11-01 18:00:00",
      "image": "https://img.example.com/festival.jpg",
      "url": "https://www.sympla.com.br/festival",
      "address": {
        "name": "Parque Ibirapuera",
        "city": "São Paulo",
        "state": "SP",
        "lat": "-23.5874",
        "lng": "-46.6576"
      },
      "category_prim": {"name": "Shows e Festas"}
    },
    {
      "id": 4221338,
      "name": "Feira Virtual"
    },
    {}
  ]
}`

func TestSymplaFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("s_token"); got != "test-token" {
			t.Errorf("got s_token %q, want test-token", got)
		}
		w.Write([]byte(symplaSample))
	}))
	t.Cleanup(srv.Close)

	s := NewSympla(config.SymplaConfig{BaseURL: srv.URL, Token: "test-token"})
	res, err := s.Fetch(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dropped != 1 {
		t.Fatalf("got %d dropped, want 1 for the empty record", res.Dropped)
	}
	if len(res.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(res.Events))
	}

	e := res.Events[0]
	if e.ID != "4221337" {
		t.Fatalf("numeric id not normalized: %q", e.ID)
	}
	if e.Title != "Festival de Música" {
		t.Fatalf("got title %q", e.Title)
	}
	if e.StartDate != "01 Nov 2025 18:00" {
		t.Fatalf("got start date %q", e.StartDate)
	}
	if !e.HasLocation() || *e.Latitude != -23.5874 {
		t.Fatalf("address coordinates not parsed: %+v", e)
	}
	if e.Category != "Shows e Festas" {
		t.Fatalf("got category %q", e.Category)
	}

	online := res.Events[1]
	if online.HasLocation() {
		t.Fatalf("record without an address must have no location: %+v", online)
	}
	if online.StartDate != "date unknown" {
		t.Fatalf("got start date %q, want the unknown sentinel", online.StartDate)
	}
}

func TestSymplaFetchUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	s := NewSympla(config.SymplaConfig{BaseURL: srv.URL})
	_, err := s.Fetch(context.Background(), nil)
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Fatalf("got %v, want ErrSourceUnavailable", err)
	}
}
