package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreyalim/stayhub-backend/internal/api"
	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/availability"
	"github.com/emreyalim/stayhub-backend/internal/photo"
	"github.com/emreyalim/stayhub-backend/internal/pkg/clock"
	"github.com/emreyalim/stayhub-backend/internal/pkg/storage"
	"github.com/emreyalim/stayhub-backend/internal/property"
	"github.com/emreyalim/stayhub-backend/internal/reservation"
	"github.com/emreyalim/stayhub-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StorageDir   string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	clk := clock.System{}

	photoStore, err := storage.NewLocalStorage(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init photo storage: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Property module
	propRepo := property.NewPgxRepository(cfg.DBPool)
	propService := property.NewService(propRepo)

	// Reservation module
	resRepo := reservation.NewPgxRepository(cfg.DBPool)
	resService := reservation.NewService(resRepo, clk)

	// Availability module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo, resRepo, propService, clk)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, propService, photoStore)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		PropertyService:     propService,
		ReservationService:  resService,
		AvailabilityService: availService,
		PhotoService:        photoService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
