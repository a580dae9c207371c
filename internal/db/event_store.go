// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/mxrtinss/equipe403/internal/model"
)

type EventStore interface {
	CreateEvent(context.Context, *model.UserEvent) (uuid.UUID, error)
	UpdateEvent(context.Context, *model.UserEvent) error
	DeleteEvent(context.Context, uuid.UUID) error
	GetEventByID(context.Context, uuid.UUID) (*model.UserEvent, error)
	ListEvents(context.Context) ([]*model.UserEvent, error)
	ListEventsByOwner(context.Context, string) ([]*model.UserEvent, error)
}
