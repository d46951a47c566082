package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/parkstaff/recruitment-api/internal/api/handler"
	"github.com/parkstaff/recruitment-api/internal/api/middleware"
	"github.com/parkstaff/recruitment-api/internal/core/domain"
	"github.com/parkstaff/recruitment-api/internal/core/ports"
	"github.com/parkstaff/recruitment-api/internal/core/service"
	"github.com/parkstaff/recruitment-api/internal/infrastructure/config"
	"github.com/parkstaff/recruitment-api/internal/infrastructure/db/postgres"
	redisdb "github.com/parkstaff/recruitment-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the competence cache is then skipped.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recruitment"))

	// --- Dependencies ---
	personRepo := postgres.NewPersonRepository(db)
	competenceRepo := postgres.NewCompetenceRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	var competenceCache ports.CompetenceCache
	if rdb != nil {
		competenceCache = redisdb.NewCompetenceCache(rdb)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(personRepo, cfg.BcryptCost, log)
	applicantService := service.NewApplicantService(competenceRepo, applicationRepo, personRepo, competenceCache, log)

	authHandler := handler.NewAuthHandler(authService, tokens)
	applicantHandler := handler.NewApplicantHandler(applicantService)
	recruiterHandler := handler.NewRecruiterHandler()

	applicantOnly := middleware.Session(tokens, personRepo, domain.RoleApplicant)
	recruiterOnly := middleware.Session(tokens, personRepo, domain.RoleRecruiter)

	// --- Auth routes ---
	e.POST("/signup", authHandler.SignUp)
	e.POST("/signin", authHandler.SignIn)

	// --- Role-gated routes ---
	e.GET("/applicant", applicantHandler.Competences, applicantOnly)
	e.GET("/applicant/apply", applicantHandler.ApplyCheck, applicantOnly)
	e.POST("/applicant/apply", applicantHandler.Apply, applicantOnly)
	e.GET("/recruiter", recruiterHandler.Home, recruiterOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
