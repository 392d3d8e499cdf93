package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brickfolio/property-portal/internal/config"
	"github.com/brickfolio/property-portal/internal/middleware"
	"github.com/brickfolio/property-portal/internal/modules/handler"
	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/pkg/security"
	"github.com/brickfolio/property-portal/internal/telemetry"
)

type RouterDeps struct {
	Config                *config.Config
	Log                   *zap.Logger
	Codec                 *security.TokenCodec
	Users                 middleware.UserFinder
	AuthHandler           *handler.AuthHandler
	PropertyHandler       *handler.PropertyHandler
	PortfolioHandler      *handler.PortfolioHandler
	ServiceProjectHandler *handler.ServiceProjectHandler
	InquiryHandler        *handler.InquiryHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS(d.Config.CORS.AllowedOrigin))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	authed := middleware.Authenticate(d.Codec, d.Users)
	staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.AuthHandler.Login)
			// open while the users table is empty, admin-only afterwards;
			// the service decides based on the optional principal
			auth.POST("/users", middleware.OptionalAuth(d.Codec, d.Users), d.AuthHandler.CreateUser)
		}

		properties := v1.Group("/properties")
		{
			properties.GET("", d.PropertyHandler.List)
			properties.GET("/:id", d.PropertyHandler.Get)

			properties.POST("", authed, staffOnly, d.PropertyHandler.Create)
			properties.PUT("/:id", authed, staffOnly, d.PropertyHandler.Update)
			properties.DELETE("/:id", authed, staffOnly, d.PropertyHandler.Delete)
		}

		projects := v1.Group("/portfolio/projects")
		{
			projects.GET("", d.PortfolioHandler.List)
			projects.GET("/:id", d.PortfolioHandler.Get)

			projects.POST("", authed, staffOnly, d.PortfolioHandler.Create)
			projects.PUT("/:id", authed, staffOnly, d.PortfolioHandler.Update)
			projects.DELETE("/:id", authed, staffOnly, d.PortfolioHandler.Delete)
		}

		services := v1.Group("/portfolio/services")
		{
			services.GET("", d.ServiceProjectHandler.List)
			services.GET("/:id", d.ServiceProjectHandler.Get)

			services.POST("", authed, staffOnly, d.ServiceProjectHandler.Create)
			services.PUT("/:id", authed, staffOnly, d.ServiceProjectHandler.Update)
			services.DELETE("/:id", authed, staffOnly, d.ServiceProjectHandler.Delete)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.POST("", d.InquiryHandler.Create)
			inquiries.GET("", authed, staffOnly, d.InquiryHandler.List)
		}
	}
	return r
}
