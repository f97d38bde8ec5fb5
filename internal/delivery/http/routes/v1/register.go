package v1

import (
	"log"

	"crewmatch/internal/ai"
	"crewmatch/internal/config"
	"crewmatch/internal/database"
	"crewmatch/internal/delivery/http/handler"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/infrastructure/cache"
	"crewmatch/internal/pkg/jwt"
	"crewmatch/internal/repository"
	"crewmatch/internal/usecase"
	"crewmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs that is built once at
// startup rather than per request.
type Deps struct {
	Cfg      config.Config
	DB       database.DB
	Cache    *cache.Redis
	Strategy ai.Strategy
	WS       *ws.Handler
	Logger   *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Cfg.JWT.AccessSecret,
		deps.Cfg.JWT.RefreshSecret,
		deps.Cfg.JWT.AccessExpiresIn,
		deps.Cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	projectRepo := repository.NewPostgresProjectRepository(deps.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(deps.DB)
	groupRepo := repository.NewPostgresGroupRepository(deps.DB)
	taskRepo := repository.NewPostgresTaskRepository(deps.DB)
	messageRepo := repository.NewPostgresMessageRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, projectRepo, deps.Cache)
	matchingUC := usecase.NewMatchingUsecase(profileRepo, projectRepo, applicationRepo, groupRepo, deps.Strategy, deps.Cache, deps.Logger)
	groupUC := usecase.NewGroupUsecase(groupRepo, projectRepo, applicationRepo, profileRepo, taskRepo, deps.Cache)
	chatUC := usecase.NewChatUsecase(messageRepo, groupUC)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	projectHandler := handler.NewProjectHandler(projectUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	groupHandler := handler.NewGroupHandler(groupUC, chatUC, deps.WS)

	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/profiles"))
	projectHandler.RegisterRoutes(protected.Group("/projects"))
	applicationHandler.RegisterRoutes(protected.Group("/projects"))
	matchHandler.RegisterRoutes(protected.Group("/match"))
	groupHandler.RegisterRoutes(protected.Group("/groups"))
}
