package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"manege/config"
	"manege/infras/otel"
	"manege/infras/postgres"
	resourceModel "manege/internal/domains/resource/model"
	resourceRepository "manege/internal/domains/resource/repository"
	userModel "manege/internal/domains/user/model"
	userRepository "manege/internal/domains/user/repository"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/logger"
	gModel "manege/shared/model"
	"manege/shared/password"
	"manege/shared/timezone"
)

const seedActor = "seed"

// Seeds the database with the two riding halls and a superadmin account.
// Safe to run repeatedly: rows that already exist are left alone.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()

	db := postgres.New(cfg)
	ot := otel.New(cfg)

	seedResources(ctx, resourceRepository.New(db, ot))
	seedSuperAdmin(ctx, userRepository.New(db, ot))
}

func seedResources(ctx context.Context, repo resourceRepository.Resource) {
	resources := []resourceModel.Resource{
		{
			ID:       uuid.NewString(),
			Name:     "Rijhal Binnen",
			Code:     "rijhal-binnen",
			Location: "Hoofdgebouw",
			Capacity: 8,
			Indoor:   true,
			Active:   true,
		},
		{
			ID:       uuid.NewString(),
			Name:     "Rijhal Buiten",
			Code:     "rijhal-buiten",
			Location: "Buitenterrein",
			Capacity: 12,
			Indoor:   false,
			Active:   true,
		},
	}

	for _, resource := range resources {
		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    resourceModel.FieldCode,
					Operator: gDto.FilterOperatorEq,
					Value:    resource.Code,
					Table:    resourceModel.TableName,
				},
			},
		}

		exist, err := repo.Exist(ctx, filter)
		if err != nil {
			log.Fatal().Err(err).Str("code", resource.Code).Msg("failed to check resource existence")
		}

		if exist {
			log.Info().Str("code", resource.Code).Msg("resource already seeded")

			continue
		}

		resource.Metadata = gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  seedActor,
			ModifiedBy: seedActor,
		}

		if err := repo.Insert(ctx, resource); err != nil {
			log.Fatal().Err(err).Str("code", resource.Code).Msg("failed to seed resource")
		}

		log.Info().Str("code", resource.Code).Msg("resource seeded")
	}
}

func seedSuperAdmin(ctx context.Context, repo userRepository.User) {
	email := "beheer@manege.local"

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}

	exist, err := repo.Exist(ctx, filter)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check superadmin existence")
	}

	if exist {
		log.Info().Str("email", email).Msg("superadmin already seeded")

		return
	}

	hashed, err := password.Hash("wachtwoord-wijzigen")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash superadmin password")
	}

	fullName := "Beheerder"
	user := userModel.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
		Role:     constant.RoleSuperAdmin,
		FullName: &fullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  seedActor,
			ModifiedBy: seedActor,
		},
	}

	if err := repo.Insert(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("failed to seed superadmin")
	}

	log.Info().Str("email", email).Msg("superadmin seeded, change the password after first login")
}
