package bootstrap

import (
	"context"
	"time"

	"github.com/ds611b/practicas/internal/config"
	"github.com/ds611b/practicas/internal/infra/blob"
	"github.com/ds611b/practicas/internal/infra/cache"
	"github.com/ds611b/practicas/internal/infra/db"
	"github.com/ds611b/practicas/internal/infra/logger"
	"github.com/ds611b/practicas/internal/infra/queue"
	"github.com/ds611b/practicas/internal/modules/handler"
	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		return logger.New(do.MustInvoke[*config.Config](i))
	})

	// schema registry
	do.Provide(inj, func(i *do.Injector) (*model.Registry, error) {
		return model.NewRegistry(), nil
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg, do.MustInvoke[*zap.Logger](i))
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d, do.MustInvoke[*model.Registry](i)); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, nil when redis.addr is empty
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})

	// RabbitMQ, nil when rabbitmq.url is empty
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		return queue.Dial(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i))
	})
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		p := do.MustInvoke[*queue.Publisher](i)
		if p == nil {
			return nil, nil
		}
		return p, nil
	})

	// S3, nil when s3.bucket is empty
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		return blob.NewS3(context.Background(), do.MustInvoke[*config.Config](i))
	})
	do.Provide(inj, func(i *do.Injector) (service.PhotoStore, error) {
		s := do.MustInvoke[*blob.S3Deps](i)
		if s == nil {
			return nil, nil
		}
		return s, nil
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	provideRepos(inj)
	provideServices(inj)
	provideHandlers(inj)

	return inj
}

// provideRepo registers a repository built from the DB and the schema registry.
func provideRepo[R any](inj *do.Injector, build func(*gorm.DB, *model.Registry) R) {
	do.Provide(inj, func(i *do.Injector) (R, error) {
		return build(do.MustInvoke[*gorm.DB](i), do.MustInvoke[*model.Registry](i)), nil
	})
}

func provideRepos(inj *do.Injector) {
	provideRepo(inj, repo.NewRoleRepo)
	provideRepo(inj, repo.NewUserRepo)
	provideRepo(inj, repo.NewProfileRepo)
	provideRepo(inj, repo.NewEmergencyContactRepo)
	provideRepo(inj, repo.NewSchoolRepo)
	provideRepo(inj, repo.NewCareerRepo)
	provideRepo(inj, repo.NewCoordinatorRepo)
	provideRepo(inj, repo.NewInstitutionManagerRepo)
	provideRepo(inj, repo.NewInstitutionRepo)
	provideRepo(inj, repo.NewProjectRepo)
	provideRepo(inj, repo.NewApplicationRepo)
	provideRepo(inj, repo.NewSkillRepo)
	provideRepo(inj, repo.NewUserSkillRepo)
	provideRepo(inj, repo.NewProjectSkillRepo)
	provideRepo(inj, repo.NewProjectActivityRepo)
	provideRepo(inj, repo.NewLogbookRepo)
	provideRepo(inj, repo.NewLogbookItemRepo)
	provideRepo(inj, repo.NewLogbookProfileRepo)
}

func provideServices(inj *do.Injector) {
	do.Provide(inj, func(i *do.Injector) (service.RoleService, error) {
		return service.NewRoleService(do.MustInvoke[repo.RoleRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i), do.MustInvoke[repo.RoleRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProfileService, error) {
		return service.NewProfileService(
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.CareerRepo](i),
			do.MustInvoke[service.PhotoStore](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EmergencyContactService, error) {
		return service.NewEmergencyContactService(do.MustInvoke[repo.EmergencyContactRepo](i), do.MustInvoke[repo.ProfileRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SchoolService, error) {
		return service.NewSchoolService(do.MustInvoke[repo.SchoolRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CareerService, error) {
		return service.NewCareerService(do.MustInvoke[repo.CareerRepo](i), do.MustInvoke[repo.SchoolRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CoordinatorService, error) {
		return service.NewCoordinatorService(do.MustInvoke[repo.CoordinatorRepo](i), do.MustInvoke[repo.CareerRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InstitutionManagerService, error) {
		return service.NewInstitutionManagerService(do.MustInvoke[repo.InstitutionManagerRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InstitutionService, error) {
		return service.NewInstitutionService(do.MustInvoke[repo.InstitutionRepo](i), do.MustInvoke[repo.InstitutionManagerRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.InstitutionRepo](i),
			do.MustInvoke[repo.InstitutionManagerRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ApplicationService, error) {
		return service.NewApplicationService(
			do.MustInvoke[repo.ApplicationRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SkillService, error) {
		return service.NewSkillService(do.MustInvoke[repo.SkillRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserSkillService, error) {
		return service.NewUserSkillService(
			do.MustInvoke[repo.UserSkillRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.SkillRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectSkillService, error) {
		return service.NewProjectSkillService(
			do.MustInvoke[repo.ProjectSkillRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SkillRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectActivityService, error) {
		return service.NewProjectActivityService(do.MustInvoke[repo.ProjectActivityRepo](i), do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LogbookService, error) {
		return service.NewLogbookService(
			do.MustInvoke[repo.LogbookRepo](i),
			do.MustInvoke[repo.LogbookProfileRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LogbookItemService, error) {
		return service.NewLogbookItemService(do.MustInvoke[repo.LogbookItemRepo](i), do.MustInvoke[repo.LogbookRepo](i)), nil
	})
}

// provideHandler registers a handler built from its service and the logger.
func provideHandler[S any, H any](inj *do.Injector, build func(S, *zap.Logger) H) {
	do.Provide(inj, func(i *do.Injector) (H, error) {
		return build(do.MustInvoke[S](i), do.MustInvoke[*zap.Logger](i)), nil
	})
}

func provideHandlers(inj *do.Injector) {
	provideHandler(inj, handler.NewRoleHandler)
	provideHandler(inj, handler.NewUserHandler)
	provideHandler(inj, handler.NewEmergencyContactHandler)
	provideHandler(inj, handler.NewSchoolHandler)
	provideHandler(inj, handler.NewCareerHandler)
	provideHandler(inj, handler.NewCoordinatorHandler)
	provideHandler(inj, handler.NewInstitutionManagerHandler)
	provideHandler(inj, handler.NewInstitutionHandler)
	provideHandler(inj, handler.NewProjectHandler)
	provideHandler(inj, handler.NewApplicationHandler)
	provideHandler(inj, handler.NewSkillHandler)
	provideHandler(inj, handler.NewUserSkillHandler)
	provideHandler(inj, handler.NewProjectSkillHandler)
	provideHandler(inj, handler.NewProjectActivityHandler)
	provideHandler(inj, handler.NewLogbookHandler)
	provideHandler(inj, handler.NewLogbookItemHandler)

	do.Provide(inj, func(i *do.Injector) (*handler.ProfileHandler, error) {
		return handler.NewProfileHandler(
			do.MustInvoke[service.ProfileService](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(inj, func(i *do.Injector) (*handler.HealthHandler, error) {
		d := do.MustInvoke[*gorm.DB](i)
		checks := map[string]handler.Pinger{
			"postgres": func(ctx context.Context) error { return db.Ping(ctx, d) },
		}
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
		return handler.NewHealthHandler(checks, do.MustInvoke[*zap.Logger](i)), nil
	})
}
