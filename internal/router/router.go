package router

import (
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/hauskasse/backend/api"
	"github.com/hauskasse/backend/internal/controllers"
	"github.com/hauskasse/backend/internal/models"
	"github.com/hauskasse/backend/internal/session"
	"github.com/hauskasse/backend/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is overwritten at build time with ldflags.
var version = "0.0.0"

// Config sets up the router, its middlewares and the application state
// shared by the controllers. The returned teardown function must be
// called when the router is discarded.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "This HTTP method is not allowed for the endpoint you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))
	r.Use(MetricsMiddleware())

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, func() {}, err
	}
	r.SetHTMLTemplate(templates)

	// Application state for the controllers
	controllers.Sessions = session.New(os.Getenv("APP_PASSWORD"))
	if !controllers.Sessions.Enabled() {
		log.Warn().Msg("APP_PASSWORD is not set, the login gate is disabled")
	}

	rules, err := models.LoadSplitRules(os.Getenv("SPLIT_RULES_FILE"))
	if err != nil {
		return nil, func() {}, err
	}
	controllers.SplitRules = rules

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	log.Debug().Str("Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Hauskasse"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "A household budgeting application: monthly limits, categories, cards and transactions."

	return r, teardown, nil
}

// AttachRoutes attaches the application routes to the router that is
// passed in.
func AttachRoutes(r *gin.Engine) {
	r.GET("/login", controllers.GetLogin)
	r.POST("/login", controllers.PostLogin)
	r.GET("/healthz", controllers.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	// Everything else sits behind the session gate
	protected := r.Group("")
	protected.Use(SessionMiddleware(controllers.Sessions))

	protected.GET("", controllers.GetRoot)

	controllers.RegisterBudgetRoutes(protected.Group("/budget"))
	controllers.RegisterCategoryRoutes(protected.Group("/categories"))
	controllers.RegisterCardRoutes(protected.Group("/cards"))
}
