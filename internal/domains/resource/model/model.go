package model

import "manege/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID       = "id"
	FieldName     = "name"
	FieldCode     = "code"
	FieldLocation = "location"
	FieldCapacity = "capacity"
	FieldIndoor   = "indoor"
	FieldActive   = "active"
)

// Resource is a bookable facility of the equestrian center, such as the
// indoor arena or the outdoor track. Code is the stable human-readable
// identifier used in URLs and seed data (e.g. "rijhal-binnen").
type Resource struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Code     string `db:"code"`
	Location string `db:"location"`
	Capacity int    `db:"capacity"`
	Indoor   bool   `db:"indoor"`
	Active   bool   `db:"active"`
	model.Metadata
}
