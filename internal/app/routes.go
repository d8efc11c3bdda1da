package app

import (
	"net/http"

	"userdir/internal/config"
	"userdir/internal/handlers"
	"userdir/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "userdir/docs"
)

// Route is one entry of the public endpoint table.
type Route struct {
	Method string
	Path   string
}

// Endpoints lists the API routes, in the order they are announced at startup.
var Endpoints = []Route{
	{http.MethodPost, "/api/auth/signup"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodGet, "/api/auth/check-email?email=test@example.com"},
	{http.MethodGet, "/api/auth/user/:email"},
	{http.MethodGet, "/api/debug/users"},
	{http.MethodGet, "/api/health"},
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, userSvc *service.UserService, log *zap.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")
	api.GET("/health", handlers.Health)

	authHandler := handlers.NewAuthHandler(userSvc, log)
	registerAuthRoutes(api, authHandler)

	debugHandler := handlers.NewDebugHandler(userSvc, log)
	registerDebugRoutes(api, debugHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "User Directory API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"health":  "/api/health",
			"api":     "/api",
		})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": handlers.MsgInternal})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/check-email", h.CheckEmail)
	api.GET("/auth/user/:email", h.GetUser)
}

func registerDebugRoutes(api *gin.RouterGroup, h *handlers.DebugHandler) {
	api.GET("/debug/users", h.Users)
}
