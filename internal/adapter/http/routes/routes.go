package routes

import (
	"context"
	"log"
	_ "skip_selector/docs"
	"skip_selector/internal/adapter/http/dto/response"
	"skip_selector/internal/adapter/http/handlers"
	repository2 "skip_selector/internal/adapter/persistence/repository"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/infrastructure/config"
	"skip_selector/internal/infrastructure/database"
	"skip_selector/internal/infrastructure/skipapi"
	"skip_selector/internal/usecase"
	"skip_selector/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	sessions, err := newSessionRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to set up the session store: %v", err)
	}

	fetcher := skipapi.NewClient(cfg.SkipsAPIBaseURL, cfg.SkipsAPITimeout)
	location := entities.Location{Postcode: cfg.Postcode, Area: cfg.Area}
	skipUseCase := usecase.NewSkipSelectionUseCase(sessions, fetcher, location)
	skipHandler := handlers.NewSkipSessionHandler(skipUseCase, response.WasteInfo{
		Type:        cfg.WasteType,
		Description: cfg.WasteDescription,
	})

	router := NewRouter(cfg, skipHandler)

	log.Printf("[skips][http] listening port=%d store=%s location=%q", cfg.Port, cfg.SessionStore, location.Label())
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the engine with middlewares, docs and the /v1 routes.
func NewRouter(cfg config.Config, skipHandler *handlers.SkipSessionHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSkipSessionRoutes(v1, skipHandler)
	return router
}

func newSessionRepository(cfg config.Config) (interfaces.ISessionRepository, error) {
	switch cfg.SessionStore {
	case config.SessionStoreDynamoDB:
		ddb := database.ConnectDynamoDB(cfg)
		return repository2.NewSessionDynamoRepository(ddb, cfg.SessionsTable, cfg.SessionTTL), nil
	case config.SessionStoreRedis:
		client, err := database.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository2.NewSessionRedisRepository(client, cfg.SessionTTL), nil
	default:
		return repository2.NewSessionMemoryRepository(cfg.SessionTTL), nil
	}
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins())))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
