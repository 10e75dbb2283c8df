package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"tp-server/api"
	"tp-server/api/gemini"
	"tp-server/config"
	"tp-server/dao/redis"
	"tp-server/db"
	"tp-server/ratelim"
	"tp-server/server"
	"tp-server/server/handlers"
	services "tp-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisItineraryDao     *redis.RedisItineraryDAO
	GeminiAPI             gemini.GeminiAPI
	ItineraryService      *services.ItineraryService
	ItineraryHandler      *handlers.ItineraryHandler
	RateLimiter           *ratelim.RateLimiter
	MuxRouter             *mux.Router
	Router                *server.Router
	TripPlannerHttpServer *server.TripPlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	// Initialize the itinerary cache
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient()
		log.Printf("Using mock redis client")
	} else {
		ctx := context.Background()
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
	}

	redisItineraryDao := redis.NewRedisItineraryDAO(redisClient)

	// Initialize the Gemini client - fixture-backed mock outside prod
	var geminiAPI gemini.GeminiAPI
	apiKey := config.GeminiAPIKey()
	if env != "prod" {
		geminiAPI = gemini.NewGeminiApiClientMock()
		// The mock serves a canned completion; no real credential involved.
		apiKey = "mock-api-key"
		log.Printf("Using mock gemini api")
	} else {
		log.Printf("Using prod gemini api")
		httpClient := api.NewHTTPClient(config.GEMINI_ENDPOINT_BASE)

		geminiClient := gemini.NewGeminiApiClient(httpClient)
		geminiClient.SetAPIKey(apiKey)
		geminiAPI = geminiClient
	}

	// Initialize service layer
	itineraryService := services.NewItineraryService(geminiAPI, redisItineraryDao, apiKey)

	// Initialize itinerary handler
	itineraryHandler := handlers.NewItineraryHandler(itineraryService)

	// Initialize rate limiter and mux router
	rateLimiter := ratelim.NewRateLimiter()
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(itineraryHandler, muxRouter, rateLimiter)

	// Initialize trip planner server
	tripPlannerHttpServer := server.NewTripPlannerHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisItineraryDao:     redisItineraryDao,
		GeminiAPI:             geminiAPI,
		ItineraryService:      itineraryService,
		ItineraryHandler:      itineraryHandler,
		RateLimiter:           rateLimiter,
		MuxRouter:             muxRouter,
		Router:                router,
		TripPlannerHttpServer: tripPlannerHttpServer,
	}
}
