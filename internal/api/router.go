package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/availability"
	availHttp "github.com/emreyalim/stayhub-backend/internal/availability/http"
	"github.com/emreyalim/stayhub-backend/internal/photo"
	photoHttp "github.com/emreyalim/stayhub-backend/internal/photo/http"
	"github.com/emreyalim/stayhub-backend/internal/property"
	propHttp "github.com/emreyalim/stayhub-backend/internal/property/http"
	"github.com/emreyalim/stayhub-backend/internal/reservation"
	resHttp "github.com/emreyalim/stayhub-backend/internal/reservation/http"
	"github.com/emreyalim/stayhub-backend/internal/user"
	userHttp "github.com/emreyalim/stayhub-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction        bool
	ProdOrigins         string
	UserService         user.Service
	PropertyService     property.Service
	ReservationService  reservation.Service
	AvailabilityService availability.Service
	PhotoService        photo.Service
	JWTManager          *auth.JWTManager
}

// NewRouter assembles middleware (CORS, logging, auth) and registers the
// routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	hostMiddleware := RequireHost()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	propHandler := propHttp.NewHandler(cfg.PropertyService, cfg.AvailabilityService)
	resHandler := resHttp.NewHandler(cfg.ReservationService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		propHttp.RegisterRoutes(v1, propHandler, authMiddleware, hostMiddleware)
		resHttp.RegisterRoutes(v1, resHandler, authMiddleware)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware, hostMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, hostMiddleware)
	}

	return r
}
