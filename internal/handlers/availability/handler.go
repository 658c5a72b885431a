package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"manege/infras/otel"
	"manege/internal/domains/availability/model/dto"
	"manege/internal/domains/availability/service"
	"manege/shared/constant"
	"manege/shared/validator"
	"manege/transport/http/response"
)

type Handler struct {
	service service.Checker
	otel    otel.Otel
}

func New(service service.Checker, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.CheckAvailability)
	})
}

// CheckAvailability reports whether a time span on a resource is free.
// @Summary Check availability of a resource
// @Description Returns a verdict with every reservation and block overlapping the requested span. The span is half-open: a reservation ending at 10:00 does not conflict with one starting at 10:00.
// @Tags Availability
// @Accept json
// @Produce json
// @Param resource_id query string true "Resource ID"
// @Param start query string true "Start of the span (RFC 3339)"
// @Param end query string true "End of the span (RFC 3339)"
// @Param exclude_id query string false "Reservation ID to exclude, used when rescheduling"
// @Success 200 {object} response.Data[dto.CheckOverlapsResponse] "Availability verdict"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckOverlapsRequest{
		ResourceID: r.URL.Query().Get(constant.RequestParamResourceID),
		Start:      r.URL.Query().Get(constant.RequestParamStart),
		End:        r.URL.Query().Get(constant.RequestParamEnd),
		ExcludeID:  r.URL.Query().Get(constant.RequestParamExcludeID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	verdict, err := handler.service.CheckOverlaps(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, verdict)
}
