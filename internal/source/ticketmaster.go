// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mxrtinss/equipe403/internal/config"
	"github.com/mxrtinss/equipe403/internal/model"
)

// Ticketmaster Discovery API docs:
// https://developer.ticketmaster.com/products-and-docs/apis/discovery-api/v2/
// Venue coordinates arrive as numeric strings.

type Ticketmaster struct {
	baseURL   string
	apiKey    string
	userAgent string
	pageSize  int
	client    *http.Client
}

func NewTicketmaster(cfg config.TicketmasterConfig) *Ticketmaster {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://app.ticketmaster.com"
	}
	size := cfg.PageSize
	if size <= 0 {
		size = 200
	}
	return &Ticketmaster{
		baseURL:   base,
		apiKey:    strings.TrimSpace(cfg.APIKey),
		userAgent: cfg.HTTP.UserAgent,
		pageSize:  size,
		client:    newHTTPClient(cfg.HTTP.Timeout),
	}
}

func (t *Ticketmaster) Name() string { return "ticketmaster" }

type tmResponse struct {
	Embedded struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
}

type tmEvent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
	} `json:"classifications"`
	Embedded struct {
		Venues []tmVenue `json:"venues"`
	} `json:"_embedded"`
}

type tmVenue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

func (t *Ticketmaster) Fetch(ctx context.Context, origin *model.Origin) (*FetchResult, error) {
	q := url.Values{}
	q.Set("apikey", t.apiKey)
	q.Set("size", fmt.Sprint(t.pageSize))
	if origin != nil {
		q.Set("latlong", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
		q.Set("unit", "km")
	}

	endpoint := t.baseURL + "/discovery/v2/events?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ticketmaster: %v", model.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: ticketmaster: http %d", model.ErrSourceUnavailable, resp.StatusCode)
	}

	var data tmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: ticketmaster: %v", model.ErrSourceUnavailable, err)
	}

	res := &FetchResult{Events: make([]*model.Event, 0, len(data.Embedded.Events))}
	for _, raw := range data.Embedded.Events {
		if raw.ID == "" && strings.TrimSpace(raw.Name) == "" {
			res.Dropped++
			continue
		}
		res.Events = append(res.Events, normalizeTicketmaster(raw))
	}
	return res, nil
}

func normalizeTicketmaster(raw tmEvent) *model.Event {
	e := &model.Event{
		ID:        raw.ID,
		Title:     pickTitle("", raw.Name),
		StartDate: displayDate(raw.Dates.Start.LocalDate, raw.Dates.Start.LocalTime),
		SourceURL: raw.URL,
	}
	if len(raw.Images) > 0 {
		e.ImageURL = raw.Images[0].URL
	}
	if len(raw.PriceRanges) > 0 {
		pr := raw.PriceRanges[0]
		e.PriceRange = &model.PriceRange{Min: pr.Min, Max: pr.Max, Currency: pr.Currency}
	}
	if len(raw.Classifications) > 0 {
		e.Category = raw.Classifications[0].Segment.Name
	}
	if len(raw.Embedded.Venues) > 0 {
		v := raw.Embedded.Venues[0]
		e.VenueName = v.Name
		e.Address = v.Address.Line1
		e.City = v.City.Name
		e.Region = v.State.StateCode
		e.Latitude, e.Longitude = coordPair(v.Location.Latitude, v.Location.Longitude)
	}
	return e
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}
