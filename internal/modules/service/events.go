package service

import (
	"context"
	"time"
)

const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
)

// EventPublisher sends domain events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

type ApplicationEvent struct {
	ApplicationID  uint      `json:"id_aplicacion"`
	StudentID      uint      `json:"estudiante_id"`
	ProjectID      uint      `json:"proyecto_id"`
	Status         string    `json:"estado"`
	PreviousStatus string    `json:"estado_anterior,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
