// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mxrtinss/equipe403/internal/config"
	"github.com/mxrtinss/equipe403/internal/model"
)

// Sympla public API v4. Authentication is an s_token header, the
// payload wraps the event list in a "data" field. Sympla does not
// support server-side geo filtering, so the origin hint is ignored.

type Sympla struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
}

func NewSympla(cfg config.SymplaConfig) *Sympla {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.sympla.com.br"
	}
	return &Sympla{
		baseURL:   base,
		token:     strings.TrimSpace(cfg.Token),
		userAgent: cfg.HTTP.UserAgent,
		client:    newHTTPClient(cfg.HTTP.Timeout),
	}
}

func (s *Sympla) Name() string { return "sympla" }

type symplaResponse struct {
	Data []symplaEvent `json:"data"`
}

type symplaEvent struct {
	ID        any    `json:"id"` // numeric in practice, not guaranteed
	Title     string `json:"title"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	Image     string `json:"image"`
	URL       string `json:"url"`
	Address   *struct {
		Name  string `json:"name"`
		City  string `json:"city"`
		State string `json:"state"`
		Lat   any    `json:"lat"`
		Lng   any    `json:"lng"`
	} `json:"address"`
	CategoryPrim *struct {
		Name string `json:"name"`
	} `json:"category_prim"`
}

func (s *Sympla) Fetch(ctx context.Context, _ *model.Origin) (*FetchResult, error) {
	endpoint := s.baseURL + "/public/v4/events"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("s_token", s.token)
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sympla: %v", model.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: sympla: http %d", model.ErrSourceUnavailable, resp.StatusCode)
	}

	var data symplaResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: sympla: %v", model.ErrSourceUnavailable, err)
	}

	res := &FetchResult{Events: make([]*model.Event, 0, len(data.Data))}
	for _, raw := range data.Data {
		id := symplaID(raw.ID)
		if id == "" && strings.TrimSpace(raw.Title) == "" && strings.TrimSpace(raw.Name) == "" {
			res.Dropped++
			continue
		}
		res.Events = append(res.Events, normalizeSympla(id, raw))
	}
	return res, nil
}

func normalizeSympla(id string, raw symplaEvent) *model.Event {
	e := &model.Event{
		ID:        id,
		Title:     pickTitle(raw.Title, raw.Name),
		StartDate: displayDate(raw.StartDate, ""),
		ImageURL:  raw.Image,
		SourceURL: raw.URL,
	}
	if raw.Address != nil {
		e.VenueName = raw.Address.Name
		e.City = raw.Address.City
		e.Region = raw.Address.State
		e.Latitude, e.Longitude = coordPair(raw.Address.Lat, raw.Address.Lng)
	}
	if raw.CategoryPrim != nil {
		e.Category = raw.CategoryPrim.Name
	}
	return e
}

func symplaID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}
