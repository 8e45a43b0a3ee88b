package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/ds611b/practicas/docs"
	"github.com/ds611b/practicas/internal/config"
	"github.com/ds611b/practicas/internal/middleware"
	"github.com/ds611b/practicas/internal/modules/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
	// Redis is nil when rate limiting is off.
	Redis *redis.Client

	HealthHandler             *handler.HealthHandler
	RoleHandler               *handler.RoleHandler
	UserHandler               *handler.UserHandler
	ProfileHandler            *handler.ProfileHandler
	EmergencyContactHandler   *handler.EmergencyContactHandler
	SchoolHandler             *handler.SchoolHandler
	CareerHandler             *handler.CareerHandler
	CoordinatorHandler        *handler.CoordinatorHandler
	InstitutionManagerHandler *handler.InstitutionManagerHandler
	InstitutionHandler        *handler.InstitutionHandler
	ProjectHandler            *handler.ProjectHandler
	ApplicationHandler        *handler.ApplicationHandler
	SkillHandler              *handler.SkillHandler
	UserSkillHandler          *handler.UserSkillHandler
	ProjectSkillHandler       *handler.ProjectSkillHandler
	ProjectActivityHandler    *handler.ProjectActivityHandler
	LogbookHandler            *handler.LogbookHandler
	LogbookItemHandler        *handler.LogbookItemHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", d.HealthHandler.Health)
	r.GET("/ready", d.HealthHandler.Ready)

	// swagger
	docs := "/" + d.Config.App.DocsPath
	r.GET(docs, func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, docs+"/index.html")
	})
	r.GET(docs+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// landing page and static assets
	r.Static("/public", d.Config.App.PublicDir)
	r.StaticFile("/", filepath.Join(d.Config.App.PublicDir, "index.html"))

	v1 := r.Group("/api/v1")
	v1.Use(
		middleware.RateLimit(d.Redis, d.Config.Redis.RateLimit, time.Duration(d.Config.Redis.RateWindowSec)*time.Second, d.Log),
		middleware.BearerAuth(d.Config.Root.ApiBearerToken),
	)
	{
		roles := v1.Group("/roles")
		{
			roles.GET("", d.RoleHandler.ListRoles)
			roles.POST("", d.RoleHandler.CreateRole)
			roles.GET("/:id", d.RoleHandler.GetRole)
			roles.PUT("/:id", d.RoleHandler.UpdateRole)
			roles.DELETE("/:id", d.RoleHandler.DeleteRole)
		}

		users := v1.Group("/usuarios")
		{
			users.GET("", d.UserHandler.ListUsers)
			users.POST("", d.UserHandler.CreateUser)
			users.GET("/:id", d.UserHandler.GetUser)
			users.PUT("/:id", d.UserHandler.UpdateUser)
			users.DELETE("/:id", d.UserHandler.DeleteUser)
			users.PUT("/:id/perfil", d.UserHandler.UpdateUserProfile)
		}

		profiles := v1.Group("/perfiles-usuario")
		{
			profiles.GET("", d.ProfileHandler.ListProfiles)
			profiles.POST("", d.ProfileHandler.CreateProfile)
			profiles.GET("/genero/:genero", d.ProfileHandler.ListProfilesByGender)
			profiles.GET("/usuario/:usuario_id", d.ProfileHandler.GetProfileByUser)
			profiles.GET("/:id", d.ProfileHandler.GetProfile)
			profiles.PUT("/:id", d.ProfileHandler.UpdateProfile)
			profiles.DELETE("/:id", d.ProfileHandler.DeleteProfile)
			profiles.POST("/:id/foto", d.ProfileHandler.UploadProfilePhoto)
			profiles.GET("/:id/foto", d.ProfileHandler.GetProfilePhoto)
		}

		contacts := v1.Group("/contactos-emergencia")
		{
			contacts.GET("", d.EmergencyContactHandler.ListEmergencyContacts)
			contacts.POST("", d.EmergencyContactHandler.CreateEmergencyContact)
			contacts.GET("/usuario/:id_usuario", d.EmergencyContactHandler.ListEmergencyContactsByUser)
			contacts.GET("/:id", d.EmergencyContactHandler.GetEmergencyContact)
			contacts.PUT("/:id", d.EmergencyContactHandler.UpdateEmergencyContact)
			contacts.DELETE("/:id", d.EmergencyContactHandler.DeleteEmergencyContact)
		}

		schools := v1.Group("/escuelas")
		{
			schools.GET("", d.SchoolHandler.ListSchools)
			schools.POST("", d.SchoolHandler.CreateSchool)
			schools.GET("/:id", d.SchoolHandler.GetSchool)
			schools.PUT("/:id", d.SchoolHandler.UpdateSchool)
			schools.DELETE("/:id", d.SchoolHandler.DeleteSchool)
		}

		careers := v1.Group("/carreras")
		{
			careers.GET("", d.CareerHandler.ListCareers)
			careers.POST("", d.CareerHandler.CreateCareer)
			careers.GET("/escuela/:id", d.CareerHandler.ListCareersBySchool)
			careers.GET("/:id", d.CareerHandler.GetCareer)
			careers.PUT("/:id", d.CareerHandler.UpdateCareer)
			careers.DELETE("/:id", d.CareerHandler.DeleteCareer)
		}

		coordinators := v1.Group("/coordinadores-carrera")
		{
			coordinators.GET("", d.CoordinatorHandler.ListCoordinators)
			coordinators.POST("", d.CoordinatorHandler.CreateCoordinator)
			coordinators.GET("/carrera/:id", d.CoordinatorHandler.ListCoordinatorsByCareer)
			coordinators.GET("/:id", d.CoordinatorHandler.GetCoordinator)
			coordinators.PUT("/:id", d.CoordinatorHandler.UpdateCoordinator)
			coordinators.DELETE("/:id", d.CoordinatorHandler.DeleteCoordinator)
		}

		managers := v1.Group("/encargados-institucion")
		{
			managers.GET("", d.InstitutionManagerHandler.ListInstitutionManagers)
			managers.POST("", d.InstitutionManagerHandler.CreateInstitutionManager)
			managers.GET("/:id", d.InstitutionManagerHandler.GetInstitutionManager)
			managers.PUT("/:id", d.InstitutionManagerHandler.UpdateInstitutionManager)
			managers.DELETE("/:id", d.InstitutionManagerHandler.DeleteInstitutionManager)
		}

		institutions := v1.Group("/instituciones")
		{
			institutions.GET("", d.InstitutionHandler.ListInstitutions)
			institutions.POST("", d.InstitutionHandler.CreateInstitution)
			institutions.GET("/estado/:estado", d.InstitutionHandler.ListInstitutionsByStatus)
			institutions.GET("/:id", d.InstitutionHandler.GetInstitution)
			institutions.PUT("/:id", d.InstitutionHandler.UpdateInstitution)
			institutions.DELETE("/:id", d.InstitutionHandler.DeleteInstitution)
		}

		projects := v1.Group("/proyectos-institucion")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("/estado/:estado/:disponibilidad", d.ProjectHandler.ListProjectsByStatus)
			projects.GET("/institucion/:id", d.ProjectHandler.ListProjectsByInstitution)
			projects.GET("/:id", d.ProjectHandler.GetProject)
			projects.PUT("/:id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", d.ProjectHandler.DeleteProject)
		}

		applications := v1.Group("/aplicaciones-estudiantes")
		{
			applications.GET("", d.ApplicationHandler.ListApplications)
			applications.POST("", d.ApplicationHandler.CreateApplication)
			applications.GET("/estudiante/:id", d.ApplicationHandler.ListApplicationsByStudent)
			applications.GET("/proyecto/:id", d.ApplicationHandler.ListApplicantsByProject)
			applications.GET("/:id", d.ApplicationHandler.GetApplication)
			applications.PUT("/:id", d.ApplicationHandler.UpdateApplication)
			applications.DELETE("/:id", d.ApplicationHandler.DeleteApplication)
		}

		skills := v1.Group("/habilidades")
		{
			skills.GET("", d.SkillHandler.ListSkills)
			skills.POST("", d.SkillHandler.CreateSkill)
			skills.GET("/:id", d.SkillHandler.GetSkill)
			skills.PUT("/:id", d.SkillHandler.UpdateSkill)
			skills.DELETE("/:id", d.SkillHandler.DeleteSkill)
		}

		userSkills := v1.Group("/usuarios-habilidades")
		{
			userSkills.GET("", d.UserSkillHandler.ListUserSkills)
			userSkills.POST("", d.UserSkillHandler.CreateUserSkill)
			userSkills.GET("/usuario/:id", d.UserSkillHandler.ListSkillsByUser)
			userSkills.GET("/:id", d.UserSkillHandler.GetUserSkill)
			userSkills.PUT("/:id", d.UserSkillHandler.UpdateUserSkill)
			userSkills.DELETE("/:id", d.UserSkillHandler.DeleteUserSkill)
		}

		projectSkills := v1.Group("/proyectos-instituciones-habilidades")
		{
			projectSkills.GET("", d.ProjectSkillHandler.ListProjectSkills)
			projectSkills.POST("", d.ProjectSkillHandler.CreateProjectSkill)
			projectSkills.GET("/proyecto/:id", d.ProjectSkillHandler.ListSkillsByProject)
			projectSkills.GET("/:id", d.ProjectSkillHandler.GetProjectSkill)
			projectSkills.PUT("/:id", d.ProjectSkillHandler.UpdateProjectSkill)
			projectSkills.DELETE("/:id", d.ProjectSkillHandler.DeleteProjectSkill)
		}

		activities := v1.Group("/actividades-proyecto")
		{
			activities.GET("", d.ProjectActivityHandler.ListProjectActivities)
			activities.POST("", d.ProjectActivityHandler.CreateProjectActivity)
			activities.GET("/:id", d.ProjectActivityHandler.GetProjectActivity)
			activities.PUT("/:id", d.ProjectActivityHandler.UpdateProjectActivity)
			activities.DELETE("/:id", d.ProjectActivityHandler.DeleteProjectActivity)
		}

		logbooks := v1.Group("/bitacoras-proyecto")
		{
			logbooks.GET("", d.LogbookHandler.ListLogbooks)
			logbooks.POST("", d.LogbookHandler.CreateLogbook)
			logbooks.GET("/:id", d.LogbookHandler.GetLogbook)
			logbooks.PUT("/:id", d.LogbookHandler.UpdateLogbook)
			logbooks.DELETE("/:id", d.LogbookHandler.DeleteLogbook)
			logbooks.POST("/:id/perfiles", d.LogbookHandler.AssignLogbookProfile)
			logbooks.DELETE("/:id/perfiles/:perfil_id", d.LogbookHandler.UnassignLogbookProfile)
		}

		items := v1.Group("/bitacora-items")
		{
			items.GET("", d.LogbookItemHandler.ListLogbookItems)
			items.POST("", d.LogbookItemHandler.CreateLogbookItem)
			items.GET("/:id", d.LogbookItemHandler.GetLogbookItem)
			items.PUT("/:id", d.LogbookItemHandler.UpdateLogbookItem)
			items.DELETE("/:id", d.LogbookItemHandler.DeleteLogbookItem)
		}
	}
	return r
}
