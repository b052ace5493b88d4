package http

import (
	"reflect"
	"strings"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the engine.
// The pool is passed in explicitly; nothing holds it as package state.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	useJSONFieldNames()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	creds := auth.NewManager(userRepo, accountRepo, sessionRepo, cfg.SessionTTL, cfg.BcryptCost)
	authService := service.NewAuthService(creds)
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	taskService := service.NewTaskService(membershipRepo, taskRepo)

	h := handlers.NewHandler(authService, taskService)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/v1")
	v1.Use(rateLimit(cfg, cfg.APIRateLimit, cfg.APIRateWindow))

	authGroup := v1.Group("/auth")
	authGroup.Use(rateLimit(cfg, cfg.AuthRateLimit, cfg.AuthRateWindow))
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	tasks := v1.Group("/tasks")
	tasks.Use(middleware.Session(sessionService))
	tasks.POST("", h.TasksByOrg)
	tasks.GET("/:id", h.GetTask)
	tasks.POST("/create", h.CreateTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
}

// rateLimit picks the Redis-backed limiter when an address is configured and
// the in-process limiter otherwise.
func rateLimit(cfg *config.Config, maxRequests int, window time.Duration) gin.HandlerFunc {
	if cfg.RedisAddr == "" {
		return middleware.SimpleRateLimit(maxRequests, window)
	}
	return middleware.RedisRateLimit(maxRequests, window)
}

// useJSONFieldNames makes validator errors report json tag names, so field
// issues match the wire format the client sent.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
