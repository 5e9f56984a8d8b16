package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"oh-server/calendar"
	"oh-server/config"
	"oh-server/dao/redis"
	"oh-server/db"
	"oh-server/hours"
	"oh-server/server"
	"oh-server/server/handlers"
	services "oh-server/service"
	"oh-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisLocationDao      *redis.RedisLocationDAO
	WallClock             hours.WallClock
	Evaluator             *hours.Evaluator
	HolidayCalendar       *calendar.Calendar
	StatusService         *services.StatusService
	HolidayService        *services.HolidayService
	LocationSeederService *services.LocationSeederService
	StatusHandler         *handlers.StatusHandler
	HolidayHandler        *handlers.HolidayHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	HoursHttpServer       *server.HoursHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client; non-prod environments run on the in-memory mock.
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Location DAO
	redisLocationDao := redis.NewRedisLocationDAO(redisClient)

	// Initialize the status engine
	wallClock := hours.NewSystemWallClock()
	evaluator := hours.NewEvaluator(wallClock)

	// Load the static holiday reference data once per process
	holidayEntries, err := util.ReadHolidaysFromJSON(config.GetResourcePath(config.HOLIDAYS_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to load holiday reference data: %v", err)
	}
	holidayCalendar := calendar.New(holidayEntries)

	// Initialize service layer
	statusService := services.NewStatusService(redisLocationDao, evaluator)
	holidayService := services.NewHolidayService(holidayCalendar)
	locationSeederService := services.NewLocationSeederService(
		redisLocationDao,
		config.GetResourcePath(config.LOCATIONS_CATALOG_RESOURCE),
	)

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(statusService, holidayService)
	holidayHandler := handlers.NewHolidayHandler(holidayService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(statusHandler, holidayHandler, muxRouter)

	// Initialize hours server
	hoursHttpServer := server.NewHoursHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisLocationDao:      redisLocationDao,
		WallClock:             wallClock,
		Evaluator:             evaluator,
		HolidayCalendar:       holidayCalendar,
		StatusService:         statusService,
		HolidayService:        holidayService,
		LocationSeederService: locationSeederService,
		StatusHandler:         statusHandler,
		HolidayHandler:        holidayHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		HoursHttpServer:       hoursHttpServer,
	}
}
