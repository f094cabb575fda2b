package domain

import "time"

// Audit actions recorded for catalog and account mutations.
const (
	AuditUserRegistered  = "user.registered"
	AuditUserLoggedIn    = "user.logged_in"
	AuditProductCreated  = "product.created"
	AuditProductUpdated  = "product.updated"
	AuditProductDeleted  = "product.deleted"
	AuditCategoryCreated = "category.created"
	AuditCategoryUpdated = "category.updated"
	AuditCategoryDeleted = "category.deleted"
)

// AuditEvent is an append-only record of who did what. Recorded off the
// request path; losing one is logged but never fails the originating request.
type AuditEvent struct {
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	ActorRole  string    `json:"actor_role" bson:"actor_role"`
	Action     string    `json:"action" bson:"action"`
	EntityKind string    `json:"entity_kind" bson:"entity_kind"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
