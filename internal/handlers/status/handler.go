package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"manege/infras/postgres"
	"manege/transport/http/response"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/status", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Status)
	})
}

type statusResponse struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Status reports whether the server and its dependencies are reachable.
// @Summary Health check
// @Tags Status
// @Produce json
// @Success 200 {object} response.Data[statusResponse] "Server is healthy"
// @Failure 503 {object} response.Message "Server is unhealthy"
// @Router /v1/status [get]
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := statusResponse{
		Postgres: "ok",
		Redis:    "ok",
	}

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres read connection is unhealthy")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres write connection is unhealthy")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis connection is unhealthy")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
