package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-booking-backend/internal/models"
)

// AuditEventRepository handles database operations for the booking audit trail
type AuditEventRepository struct {
	db DB
}

// NewAuditEventRepository creates a new AuditEventRepository
func NewAuditEventRepository(db DB) *AuditEventRepository {
	return &AuditEventRepository{db: db}
}

// Insert appends an audit event
func (r *AuditEventRepository) Insert(event *models.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO booking_audit_events (id, action, entity_type, entity_id, details)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, event.ID, event.Action, event.EntityType, event.EntityID, event.Details)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// ListRecent returns the newest audit events, most recent first
func (r *AuditEventRepository) ListRecent(limit int) ([]models.AuditEvent, error) {
	query := `
		SELECT id, action, entity_type, entity_id, details, created_at
		FROM booking_audit_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	events := make([]models.AuditEvent, 0)
	if err := r.db.Select(&events, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

// ListByEntity returns all audit events recorded for one entity
func (r *AuditEventRepository) ListByEntity(entityType, entityID string) ([]models.AuditEvent, error) {
	query := `
		SELECT id, action, entity_type, entity_id, details, created_at
		FROM booking_audit_events
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at ASC
	`

	events := make([]models.AuditEvent, 0)
	if err := r.db.Select(&events, query, entityType, entityID); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}
