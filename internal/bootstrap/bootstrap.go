package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mertc/degreetrack/docs" // Import generated swagger docs
	appControllers "github.com/mertc/degreetrack/internal/app/controllers"
	appRepos "github.com/mertc/degreetrack/internal/app/repositories"
	appRoutes "github.com/mertc/degreetrack/internal/app/routes"
	appServices "github.com/mertc/degreetrack/internal/app/services"
	"github.com/mertc/degreetrack/internal/config"
	appMiddleware "github.com/mertc/degreetrack/internal/middleware"
	pkgAuth "github.com/mertc/degreetrack/internal/pkg/auth"
	"github.com/mertc/degreetrack/internal/pkg/helpers"
	"github.com/mertc/degreetrack/internal/pkg/logger"
	"github.com/mertc/degreetrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	CourseService      appServices.CourseService
	ProgressService    appServices.ProgressService
	AuthController     *appControllers.AuthController
	CourseController   *appControllers.CourseController
	ProgressController *appControllers.ProgressController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore builds the in-memory repositories and loads the embedded
// dataset into them. The dataset is read-only for the life of the process,
// so a load failure here is fatal.
func SetupStore(lgr zerolog.Logger) (*appRepos.Repositories, error) {
	lgr.Info().Msg("Loading embedded dataset...")
	repos := appRepos.NewRepositories()

	if err := seed.LoadDefaultData(context.Background(), repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to load embedded dataset")
		return nil, err
	}

	lgr.Info().
		Int("courses", repos.CourseRepository.Count(context.Background())).
		Int("users", repos.UserRepository.Count(context.Background())).
		Msg("Dataset loaded.")
	return repos, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 168*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ProgressService = appServices.NewProgressService(deps.Repos.RequirementRepository, deps.CourseService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.AuthService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService, deps.AuthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.ProgressController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
