// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/model"
)

const bucketUserEvent = "user_event_store"

func NewEventStore(db *bolt.DB) (*EventStore, error) {
	return &EventStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketUserEvent))
		return err
	})
}

type EventStore struct {
	db *bolt.DB
}

func (s *EventStore) CreateEvent(ctx context.Context, event *model.UserEvent) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateEvent")
	defer span.End()

	if event.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		event.ID = uuid.New()
	}
	if event.CreatedAt == nil {
		now := time.Now()
		event.CreatedAt = &now
	}

	j, err := json.Marshal(event)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return event.ID, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketUserEvent)).Put(event.ID[:], j)
	})
}

func (s *EventStore) UpdateEvent(ctx context.Context, event *model.UserEvent) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "UpdateEvent")
	defer span.End()

	if event.ID == uuid.Nil {
		err := errors.New("event ID is required for updating")
		span.RecordError(err)
		return err
	}
	now := time.Now()
	event.UpdatedAt = &now

	span.AddEvent("Update bucket")
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketUserEvent))
		raw := bucket.Get(event.ID[:])
		if raw == nil {
			return model.ErrNotFound
		}
		existing := &model.UserEvent{}
		if err := json.Unmarshal(raw, existing); err != nil {
			return err
		}
		event.CreatedAt = existing.CreatedAt

		j, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return bucket.Put(event.ID[:], j)
	})
}

func (s *EventStore) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteEvent")
	defer span.End()

	if eventID == uuid.Nil {
		err := errors.New("event ID is required for deleting")
		span.RecordError(err)
		return err
	}
	span.AddEvent("Update bucket")
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketUserEvent)).Delete(eventID[:])
	})
}

func (s *EventStore) GetEventByID(ctx context.Context, eventID uuid.UUID) (*model.UserEvent, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetEventByID")
	defer span.End()

	span.AddEvent("View bucket")
	event := &model.UserEvent{}
	return event, s.db.View(func(tx *bolt.Tx) error {
		res := tx.Bucket([]byte(bucketUserEvent)).Get(eventID[:])
		if res == nil {
			span.RecordError(model.ErrNotFound)
			return model.ErrNotFound
		}
		return json.Unmarshal(res, event)
	})
}

func (s *EventStore) ListEvents(ctx context.Context) ([]*model.UserEvent, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListEvents")
	defer span.End()

	span.AddEvent("View bucket")
	var events []*model.UserEvent
	return events, s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketUserEvent)).ForEach(func(_, v []byte) error {
			event := &model.UserEvent{}
			if err := json.Unmarshal(v, event); err != nil {
				span.RecordError(err)
				return err
			}
			events = append(events, event)
			return nil
		})
	})
}

func (s *EventStore) ListEventsByOwner(ctx context.Context, ownerID string) ([]*model.UserEvent, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ListEventsByOwner")
	defer span.End()

	all, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	var events []*model.UserEvent
	for _, event := range all {
		if event.OwnerID == ownerID {
			events = append(events, event)
		}
	}
	return events, nil
}
