package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/mxrtinss/equipe403/internal/model"
)

// EventStore keeps user-created events in a JSON file.
type EventStore struct {
	filename string
	mu       sync.RWMutex
	events   map[uuid.UUID]*model.UserEvent
}

func NewEventStore(filename string) (*EventStore, error) {
	store := &EventStore{
		filename: filename,
		events:   make(map[uuid.UUID]*model.UserEvent),
	}
	if err := store.loadFromFile(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *EventStore) CreateEvent(ctx context.Context, event *model.UserEvent) (uuid.UUID, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "CreateEvent")
	defer span.End()

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if _, ok := s.events[event.ID]; ok {
		err := errors.New("event already exists")
		span.RecordError(err)
		return uuid.Nil, err
	}

	if event.CreatedAt == nil {
		now := time.Now()
		event.CreatedAt = &now
	}
	s.events[event.ID] = event

	span.AddEvent("save to file")
	if err := s.saveToFile(ctx); err != nil {
		return uuid.Nil, err
	}
	return event.ID, nil
}

func (s *EventStore) UpdateEvent(ctx context.Context, event *model.UserEvent) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "UpdateEvent")
	defer span.End()

	if event.ID == uuid.Nil {
		err := errors.New("event ID is required for updating")
		span.RecordError(err)
		return err
	}

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	existing, ok := s.events[event.ID]
	if !ok {
		span.RecordError(model.ErrNotFound)
		return model.ErrNotFound
	}

	now := time.Now()
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = &now
	s.events[event.ID] = event

	return s.saveToFile(ctx)
}

func (s *EventStore) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "DeleteEvent")
	defer span.End()

	span.AddEvent("Lock")
	s.mu.Lock()
	defer span.AddEvent("Unlock")
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		span.RecordError(model.ErrNotFound)
		return model.ErrNotFound
	}
	delete(s.events, eventID)

	return s.saveToFile(ctx)
}

func (s *EventStore) GetEventByID(ctx context.Context, eventID uuid.UUID) (*model.UserEvent, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetEventByID")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		span.RecordError(model.ErrNotFound)
		return nil, model.ErrNotFound
	}
	return event, nil
}

func (s *EventStore) ListEvents(ctx context.Context) ([]*model.UserEvent, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListEvents")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	list := make([]*model.UserEvent, 0, len(s.events))
	for _, event := range s.events {
		list = append(list, event)
	}
	return list, nil
}

func (s *EventStore) ListEventsByOwner(ctx context.Context, ownerID string) ([]*model.UserEvent, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListEventsByOwner")
	defer span.End()

	span.AddEvent("RLock")
	s.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer s.mu.RUnlock()

	var list []*model.UserEvent
	for _, event := range s.events {
		if event.OwnerID == ownerID {
			list = append(list, event)
		}
	}
	return list, nil
}

func (s *EventStore) saveToFile(ctx context.Context) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "SaveToFile")
	defer span.End()

	fileData, err := json.MarshalIndent(s.events, "", "  ")
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := os.WriteFile(s.filename, fileData, 0644); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *EventStore) loadFromFile() error {
	if _, err := os.Stat(s.filename); os.IsNotExist(err) {
		// File does not exist, no events to load
		return nil
	}

	fileData, err := os.ReadFile(s.filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Unmarshal(fileData, &s.events)
}
