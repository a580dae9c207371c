package source

import (
	"context"

	"github.com/mxrtinss/equipe403/internal/db"
	"github.com/mxrtinss/equipe403/internal/model"
)

// Local serves user-created events from the persistent store. It is the
// fallback catalog when the remote one is unreachable.
type Local struct {
	store db.EventStore
}

func NewLocal(store db.EventStore) *Local {
	return &Local{store: store}
}

func (l *Local) Name() string { return "local" }

func (l *Local) Fetch(ctx context.Context, _ *model.Origin) (*FetchResult, error) {
	events, err := l.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	res := &FetchResult{Events: make([]*model.Event, 0, len(events))}
	for _, ue := range events {
		res.Events = append(res.Events, ue.Canonical())
	}
	return res, nil
}
