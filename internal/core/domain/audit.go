package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPixCreate     AuditAction = "PIX_CREATE"
	AuditActionCheckout      AuditAction = "CHECKOUT"
	AuditActionLogin         AuditAction = "LOGIN"
	AuditActionProductUpsert AuditAction = "PRODUCT_UPSERT"
	AuditActionProductDelete AuditAction = "PRODUCT_DELETE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"` // admin username, empty for storefront visitors
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
