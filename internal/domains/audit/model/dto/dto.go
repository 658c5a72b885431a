package dto

import (
	"encoding/json"

	"manege/internal/domains/audit/model"
	"manege/shared"
	gDto "manege/shared/dto"
)

type EntryResponse struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Changes    json.RawMessage `json:"changes"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.ID = model.ID
	r.ActorID = model.ActorID
	r.Action = model.Action
	r.EntityType = model.EntityType
	r.EntityID = model.EntityID
	r.Changes = json.RawMessage(model.Changes)
	r.Metadata.FromModel(model.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

// AuditEvent is the payload published to the audit topic, mirroring the row
// written to the log table.
type AuditEvent struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Changes    json.RawMessage `json:"changes"`
	OccurredAt string          `json:"occurred_at"`
}
