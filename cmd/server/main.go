package main

//go:generate swag init -g main.go -d ./,../../internal/modules/handler,../../internal/modules/service,../../internal/modules/model,../../internal/modules/serializer -o ../../docs

//	@title			Practicas API
//	@version		1.0
//	@description	Internship management API: institutions, projects, students, applications and logbooks.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				API bearer token (e.g., "Bearer s3cret")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds611b/practicas/internal/bootstrap"
	"github.com/ds611b/practicas/internal/config"
	"github.com/ds611b/practicas/internal/infra/cache"
	dbpkg "github.com/ds611b/practicas/internal/infra/db"
	"github.com/ds611b/practicas/internal/infra/queue"
	"github.com/ds611b/practicas/internal/modules/handler"
	"github.com/ds611b/practicas/internal/router"
	"github.com/ds611b/practicas/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	db, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		log.Sugar().Fatalw("failed to open database", "err", err)
	}
	rdb := do.MustInvoke[*redis.Client](inj)
	if rdb != nil {
		defer rdb.Close()
	}
	mq, err := do.Invoke[*queue.Publisher](inj)
	if err != nil {
		log.Sugar().Fatalw("failed to connect to rabbitmq", "err", err)
	}
	if mq != nil {
		defer mq.Close()
	}

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config: cfg,
		Log:    log,
		Redis:  rdb,

		HealthHandler:             do.MustInvoke[*handler.HealthHandler](inj),
		RoleHandler:               do.MustInvoke[*handler.RoleHandler](inj),
		UserHandler:               do.MustInvoke[*handler.UserHandler](inj),
		ProfileHandler:            do.MustInvoke[*handler.ProfileHandler](inj),
		EmergencyContactHandler:   do.MustInvoke[*handler.EmergencyContactHandler](inj),
		SchoolHandler:             do.MustInvoke[*handler.SchoolHandler](inj),
		CareerHandler:             do.MustInvoke[*handler.CareerHandler](inj),
		CoordinatorHandler:        do.MustInvoke[*handler.CoordinatorHandler](inj),
		InstitutionManagerHandler: do.MustInvoke[*handler.InstitutionManagerHandler](inj),
		InstitutionHandler:        do.MustInvoke[*handler.InstitutionHandler](inj),
		ProjectHandler:            do.MustInvoke[*handler.ProjectHandler](inj),
		ApplicationHandler:        do.MustInvoke[*handler.ApplicationHandler](inj),
		SkillHandler:              do.MustInvoke[*handler.SkillHandler](inj),
		UserSkillHandler:          do.MustInvoke[*handler.UserSkillHandler](inj),
		ProjectSkillHandler:       do.MustInvoke[*handler.ProjectSkillHandler](inj),
		ProjectActivityHandler:    do.MustInvoke[*handler.ProjectActivityHandler](inj),
		LogbookHandler:            do.MustInvoke[*handler.LogbookHandler](inj),
		LogbookItemHandler:        do.MustInvoke[*handler.LogbookItemHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/"+cfg.App.DocsPath+"/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
