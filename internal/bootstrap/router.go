package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	httpapi "github.com/amriteshrai/portfolio-backend/internal/api/http"
	"github.com/amriteshrai/portfolio-backend/internal/api/http/middleware"
	authmw "github.com/amriteshrai/portfolio-backend/internal/auth/middleware"
	blogshttp "github.com/amriteshrai/portfolio-backend/internal/blogs/http"
	blogsrepo "github.com/amriteshrai/portfolio-backend/internal/blogs/repository"
	"github.com/amriteshrai/portfolio-backend/internal/contact"
	papershttp "github.com/amriteshrai/portfolio-backend/internal/papers/http"
	papersrepo "github.com/amriteshrai/portfolio-backend/internal/papers/repository"
	projectshttp "github.com/amriteshrai/portfolio-backend/internal/projects/http"
	projectsrepo "github.com/amriteshrai/portfolio-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AdminEmail     string
	AllowedOrigins []string
	DB             *mongo.Database
	Verifier       authmw.TokenVerifier
	Mailer         contact.Mailer
	Log            *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		ginzap.GinzapWithConfig(dep.Log, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{"/health", "/healthz"},
		}),
		ginzap.RecoveryWithZap(dep.Log, true),
		middleware.RequestID(),
	)

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Authorization", "Content-Type"},
	}
	if len(dep.AllowedOrigins) == 1 && dep.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	requireAdmin := authmw.RequireAdmin(dep.Verifier, dep.AdminEmail)

	blogHandler := blogshttp.New(blogsrepo.New(dep.DB), dep.Log)
	blogHandler.Register(api.Group("/blogs"), requireAdmin)

	projectHandler := projectshttp.New(projectsrepo.New(dep.DB), dep.Log)
	projectHandler.Register(api.Group("/projects"), requireAdmin)

	paperHandler := papershttp.New(papersrepo.New(dep.DB), dep.Log)
	paperHandler.Register(api.Group("/papers"), requireAdmin)
	// the public site links to /research for reads
	paperHandler.RegisterReads(api.Group("/research"))

	contactHandler := contact.NewHandler(dep.Mailer, dep.Log)
	contactHandler.Register(api)

	return r
}
