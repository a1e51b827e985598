package bootstrap

import (
	"context"
	"log"
	"time"

	"crm-meetings-be/internal/config"
	"crm-meetings-be/internal/controller"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/repository/memory"
	"crm-meetings-be/internal/repository/unitofwork"
	"crm-meetings-be/internal/service"
	"crm-meetings-be/pkg/cache"

	pktNats "crm-meetings-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const limiterKeyPrefix = "meetings:limiter:"

type Container struct {
	MeetingController controller.IMeetingController

	// Route plumbing consumed by the server
	AuthMiddleware fiber.Handler
	LimiterStorage fiber.Storage

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogFilePath)

	if cfg.Auth.JwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set, every protected route will answer 401")
	}

	c := &Container{
		AuthMiddleware: serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, cfg.App.NatsStream, cfg.App.NatsSubjectPrefix)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		c.closers = append(c.closers, natsPub.Close)
	}

	// 3. Rate limiter storage, Redis when reachable
	c.LimiterStorage = newLimiterStorage(cfg.App.RedisURL)
	c.closers = append(c.closers, func() { _ = c.LimiterStorage.Close() })

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub, natsPub, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.EventTopic, activityLogger)
	meetingService := service.NewMeetingService(uowFactory, publisherService, sysLogger)

	// 5. Controllers
	c.MeetingController = controller.NewMeetingController(meetingService)

	c.closers = append(c.closers, func() {
		_ = sysLogger.Sync()
		_ = activityLogger.Sync()
	})

	return c
}

// Close releases broker connections and flushes loggers.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newLimiterStorage(redisURL string) fiber.Storage {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Rate limiting falls back to memory", err)
		_ = rdb.Close()
		return memory.NewLimiterStorage()
	}

	return cache.NewRedisStorage(rdb, limiterKeyPrefix)
}
