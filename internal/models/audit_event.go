package models

import (
	"time"
)

// AuditEvent represents one row of the booking audit trail
type AuditEvent struct {
	ID         string    `json:"id" db:"id"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entity_type" db:"entity_type"`
	EntityID   string    `json:"entity_id" db:"entity_id"`
	Details    string    `json:"details" db:"details"` // JSON payload
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
