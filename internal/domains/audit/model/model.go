package model

import "manege/shared/model"

const (
	TableName  = "audit_log"
	EntityName = "audit"

	FieldID         = "id"
	FieldActorID    = "actor_id"
	FieldAction     = "action"
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
	FieldChanges    = "changes"
)

const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionConfirm = "CONFIRM"
	ActionCancel  = "CANCEL"
	ActionDelete  = "DELETE"
)

// Entry is one immutable audit record. Changes holds the JSON-encoded state
// relevant to the action.
type Entry struct {
	ID         string `db:"id"`
	ActorID    string `db:"actor_id"`
	Action     string `db:"action"`
	EntityType string `db:"entity_type"`
	EntityID   string `db:"entity_id"`
	Changes    string `db:"changes"`
	model.Metadata
}
