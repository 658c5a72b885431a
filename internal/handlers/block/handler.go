package block

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"manege/infras/otel"
	"manege/internal/domains/block/model"
	"manege/internal/domains/block/model/dto"
	"manege/internal/domains/block/service"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/validator"
	"manege/transport/http/response"
)

type Handler struct {
	service service.Block
	otel    otel.Otel
}

func New(service service.Block, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blocks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBlock)
		routerGroup.Get("/", handler.GetBlocks)
		routerGroup.Get("/{id}", handler.GetBlockByID)
		routerGroup.Put("/{id}", handler.UpdateBlock)
		routerGroup.Delete("/{id}", handler.DeleteBlock)
	})
}

// CreateBlock closes a resource for a time span.
// @Summary Create a new block
// @Description Close a resource for maintenance or a private event. Blocks always win over reservations.
// @Tags Block
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRequest true "Create Block Request"
// @Success 201 {object} response.Message "Block created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks [post]
// @Security BearerAuth
func (handler *Handler) CreateBlock(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlock")
	defer scope.End()

	req := dto.CreateBlockRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create block")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Block created successfully")
}

// GetBlocks lists blocks.
// @Summary Get all blocks
// @Tags Block
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param resource_id query string false "Filter by resource ID"
// @Success 200 {object} response.Data[dto.GetBlocksResponse] "List of blocks"
// @Failure 500 {object} response.Error
// @Router /v1/blocks [get]
// @Security BearerAuth
func (handler *Handler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlocks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if resourceID := r.URL.Query().Get(model.FieldResourceID); resourceID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResourceID,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceID,
			Table:    model.TableName,
		})
	}

	blocks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, blocks)
}

// GetBlockByID retrieves one block.
// @Summary Get a block by ID
// @Tags Block
// @Accept json
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} response.Data[dto.BlockResponse] "Block details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBlockByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	block, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get block by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, block)
}

// UpdateBlock updates a block.
// @Summary Update a block by ID
// @Tags Block
// @Accept json
// @Produce json
// @Param id path string true "Block ID"
// @Param request body dto.UpdateBlockRequest true "Update Block Request"
// @Success 200 {object} response.Message "Block updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBlock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBlockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update block")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Block updated successfully")
}

// DeleteBlock removes a block.
// @Summary Delete a block by ID
// @Tags Block
// @Accept json
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} response.Message "Block deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete block")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Block deleted successfully")
}
