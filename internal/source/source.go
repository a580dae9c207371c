// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package source

import (
	"context"
	"fmt"

	"github.com/mxrtinss/equipe403/internal/config"
	"github.com/mxrtinss/equipe403/internal/model"
)

// FetchResult carries one source's normalized records plus the number
// of raw records dropped during normalization.
type FetchResult struct {
	Events  []*model.Event
	Dropped int
}

// Source is one upstream event catalog. Fetch returns the normalized
// set; origin is an optional hint a remote catalog may use to
// pre-narrow its answer, the caller still enforces the radius itself.
type Source interface {
	Name() string
	Fetch(ctx context.Context, origin *model.Origin) (*FetchResult, error)
}

// NewFromConfig builds the remote catalog source selected by c.
func NewFromConfig(c config.SourceConfig) (Source, error) {
	switch c.Type {
	case "ticketmaster":
		return NewTicketmaster(c.Ticketmaster), nil
	case "sympla":
		return NewSympla(c.Sympla), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", c.Type)
	}
}
