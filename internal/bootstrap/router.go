package bootstrap

import (
	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	"github.com/devfolio/portfolio-backend/internal/auth/middleware"
	"github.com/devfolio/portfolio-backend/internal/contact"
	"github.com/devfolio/portfolio-backend/internal/profile"
	"github.com/devfolio/portfolio-backend/internal/projects/cache"
	projecthttp "github.com/devfolio/portfolio-backend/internal/projects/http"
	"github.com/devfolio/portfolio-backend/internal/projects/repository"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
	"github.com/devfolio/portfolio-backend/internal/storage"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	AuthClient   *fbauth.Client
	Firestore    *firestore.Client
	Storage      *storage.Client
	Redis        *redis.Client
	Mailer       *contact.Mailer
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig(dep.AllowOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var listCache service.ListCache
	if dep.Redis != nil {
		listCache = cache.New(dep.Redis, 0)
	}

	projectRepo := repository.NewProjectRepository(dep.Firestore)
	projectSvc := service.NewProjectService(projectRepo, dep.Storage, listCache)
	projectHandler := projecthttp.NewHandler(projectSvc)

	contactRepo := contact.NewMessageRepository(dep.Firestore)
	contactSvc := contact.NewService(contactRepo, notifier(dep.Mailer))
	contactHandler := contact.NewHandler(contactSvc)

	api := r.Group("/api/v1")

	// Visitor-facing routes need no token.
	projectHandler.RegisterPublic(api.Group("/portfolio"))
	contactHandler.Register(api)

	authed := api.Group("")
	authed.Use(middleware.FirebaseAuthMiddleware(dep.AuthClient))

	projectHandler.Register(authed.Group("/projects"))
	profile.NewHandler(dep.AuthClient).Register(authed.Group("/me"))

	return r
}

// corsConfig allows the configured origins. Credentials cannot be combined
// with a wildcard origin, so the wildcard falls back to AllowAllOrigins.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// notifier keeps a nil *Mailer from becoming a non-nil Notifier interface.
func notifier(m *contact.Mailer) contact.Notifier {
	if m == nil {
		return nil
	}
	return m
}
