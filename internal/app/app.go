package app

import (
	"context"
	"io"
	"net/http"
	"time"

	"userdir/internal/config"
	"userdir/internal/dto"
	"userdir/internal/handlers"
	"userdir/internal/logging"
	"userdir/internal/repo"
	"userdir/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgEndpointNotFound = "Endpoint not found"

type App struct {
	cfg    config.Config
	log    *zap.Logger
	router *gin.Engine
}

// New wires the service on top of a fresh in-memory user directory.
func New(cfg config.Config, log *zap.Logger) *App {
	return NewWithRepo(cfg, log, repo.NewMemUserRepo())
}

// NewWithRepo is New with a caller-supplied directory.
func NewWithRepo(cfg config.Config, log *zap.Logger, users repo.UserRepo) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{cfg: cfg, log: log}
	a.router = newRouter(cfg, log, users)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	_ = a.log.Sync()
	return nil
}

func newRouter(cfg config.Config, log *zap.Logger, users repo.UserRepo) *gin.Engine {
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// "/api/health/" is not a route; it gets the JSON 404 instead of a redirect.
	r.RedirectTrailingSlash = false
	// Match on the escaped path so an email holding "%2F" still reaches :email.
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(logging.RequestLogger(log))
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, recoveryHandler(log)))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgEndpointNotFound})
	})

	userSvc := service.NewUserService(users, log)
	Setup(r, cfg, userSvc, log)
	return r
}

// recoveryHandler turns a panic into the generic 500 reply; the cause is only logged.
func recoveryHandler(log *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", recovered),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: handlers.MsgInternal})
	}
}
