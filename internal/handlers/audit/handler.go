package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"manege/infras/otel"
	"manege/internal/domains/audit/model"
	"manege/internal/domains/audit/service"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/transport/http/response"
)

type Handler struct {
	service service.Recorder
	otel    otel.Otel
}

func New(service service.Recorder, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEntries)
	})
}

// GetEntries lists audit log entries.
// @Summary Get audit log entries
// @Description Retrieve the audit trail with optional filtering by entity and action.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param entity_type query string false "Filter by entity type"
// @Param entity_id query string false "Filter by entity ID"
// @Param action query string false "Filter by action"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "Audit log entries"
// @Failure 500 {object} response.Error
// @Router /v1/audit [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldEntityType, model.FieldEntityID, model.FieldAction} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entries)
}
