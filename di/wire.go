//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"manege/config"
	"manege/infras/jwt"
	"manege/infras/kafka"
	"manege/infras/otel"
	"manege/infras/postgres"
	"manege/infras/redis"
	"manege/infras/s3"
	"manege/permissions"
	"manege/shared/cache"
	"manege/transport/http"
	"manege/transport/http/middleware"
	"manege/transport/http/router"

	auditRepository "manege/internal/domains/audit/repository"
	auditService "manege/internal/domains/audit/service"
	availabilityService "manege/internal/domains/availability/service"
	blockRepository "manege/internal/domains/block/repository"
	blockService "manege/internal/domains/block/service"
	photoRepository "manege/internal/domains/photo/repository"
	photoService "manege/internal/domains/photo/service"
	reservationRepository "manege/internal/domains/reservation/repository"
	reservationService "manege/internal/domains/reservation/service"
	resourceRepository "manege/internal/domains/resource/repository"
	resourceService "manege/internal/domains/resource/service"
	userRepository "manege/internal/domains/user/repository"
	userService "manege/internal/domains/user/service"

	auditHandler "manege/internal/handlers/audit"
	availabilityHandler "manege/internal/handlers/availability"
	blockHandler "manege/internal/handlers/block"
	photoHandler "manege/internal/handlers/photo"
	reservationHandler "manege/internal/handlers/reservation"
	resourceHandler "manege/internal/handlers/resource"
	statusHandler "manege/internal/handlers/status"
	userHandler "manege/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var blockDomain = wire.NewSet(
	blockRepository.New,
	blockService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var domains = wire.NewSet(
	resourceDomain,
	availabilityDomain,
	reservationDomain,
	blockDomain,
	userDomain,
	auditDomain,
	photoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	statusHandler.New,
	resourceHandler.New,
	availabilityHandler.New,
	reservationHandler.New,
	blockHandler.New,
	userHandler.New,
	auditHandler.New,
	photoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
