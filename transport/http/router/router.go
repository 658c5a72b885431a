package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"manege/config"
	"manege/internal/handlers/audit"
	"manege/internal/handlers/availability"
	"manege/internal/handlers/block"
	"manege/internal/handlers/photo"
	"manege/internal/handlers/reservation"
	"manege/internal/handlers/resource"
	"manege/internal/handlers/status"
	"manege/internal/handlers/user"
	"manege/transport/http/middleware"
)

type DomainHandlers struct {
	Status       status.Handler
	Resource     resource.Handler
	Availability availability.Handler
	Reservation  reservation.Handler
	Block        block.Handler
	User         user.Handler
	Photo        photo.Handler
	Audit        audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Status.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthRole.APIKey)
			protected.Use(r.AuthRole.Auth)
			protected.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Resource.Router(protected)
			r.DomainHandlers.Availability.Router(protected)
			r.DomainHandlers.Reservation.Router(protected)
			r.DomainHandlers.Block.Router(protected)
			r.DomainHandlers.User.Router(protected)
			r.DomainHandlers.Photo.Router(protected)
			r.DomainHandlers.Audit.Router(protected)
		})
	})
}
