package model

import "manege/shared/model"

const (
	TableName  = "photos"
	EntityName = "photo"

	FieldID         = "id"
	FieldResourceID = "resource_id"
	FieldTitle      = "title"
	FieldURL        = "url"
)

// Photo is a facility picture shown on the public pages of the center.
type Photo struct {
	ID         string `db:"id"`
	ResourceID string `db:"resource_id"`
	Title      string `db:"title"`
	URL        string `db:"url"`
	model.Metadata
}
