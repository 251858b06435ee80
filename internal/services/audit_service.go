package services

import (
	"encoding/json"
	"fmt"

	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/utils"
	"github.com/google/uuid"
)

// AuditService records every assignment engine mutation for back-office
// traceability. Read-only operations are not audited.
type AuditService struct {
	db database.DB
}

// NewAuditService creates a new audit service
func NewAuditService(db database.DB) *AuditService {
	return &AuditService{db: db}
}

// ActionContext identifies the operator behind an engine operation
type ActionContext struct {
	Actor     string
	IPAddress string
	UserAgent string
}

// AuditEntry is one recorded engine mutation
type AuditEntry struct {
	Action     string                 // e.g. "manual_assign", "bulk_assign", "clear_all"
	EventID    string                 // Owning event
	EntityType string                 // "client", "hotel", "event"
	EntityID   string                 // Affected entity, empty for event-wide ops
	Details    map[string]interface{} // Additional details stored as JSONB
}

// LogAction records an engine mutation with device details parsed from the
// operator's user agent.
func (s *AuditService) LogAction(ctx ActionContext, entry AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	details["device_info"] = utils.ParseUserAgent(ctx.UserAgent)

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	query := `
		INSERT INTO audit_log (id, actor, action, event_id, entity_type, entity_id, ip_address, user_agent, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.db.Exec(
		query,
		uuid.New().String(), ctx.Actor, entry.Action, entry.EventID,
		entry.EntityType, nullable(entry.EntityID), ctx.IPAddress, ctx.UserAgent, detailsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
