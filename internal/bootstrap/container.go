package bootstrap

import (
	"context"
	"log"
	"math/rand"
	"time"

	"gym-retention-be/internal/config"
	"gym-retention-be/internal/controller"
	"gym-retention-be/internal/handler"
	"gym-retention-be/internal/pkg/logger"
	"gym-retention-be/internal/pkg/mailer"
	"gym-retention-be/internal/repository/memory"
	"gym-retention-be/internal/repository/unitofwork"
	"gym-retention-be/internal/service"
	"gym-retention-be/internal/websocket"
	"gym-retention-be/pkg/churn"
	pktNats "gym-retention-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChurnController   controller.IChurnController
	MemberController  controller.IMemberController
	PaymentController controller.IPaymentController
	AuthController    controller.IAuthController

	// Background services (exposed for main.go to run)
	AlertConsumerService service.IAlertConsumerService

	// WebSockets
	AlertHandler *handler.AlertHandler
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub on its own log file so alert chatter stays out of app.log.
	alertLogger := logger.NewIsolatedLogger(cfg.App.AlertLogFilePath)
	wsHub := websocket.NewHub(rdb, alertLogger)
	go wsHub.Run()

	// 3. Services
	predictionCache := memory.NewPredictionCache()
	scorer := churn.NewScorer(rand.New(rand.NewSource(time.Now().UnixNano())))

	publisherService := service.NewPublisherService(cfg.Churn.PredictionTopic, pubSub)
	churnService := service.NewChurnService(
		uowFactory,
		scorer,
		publisherService,
		predictionCache,
		rdb,
		cfg.Churn.BatchWorkers,
		time.Duration(cfg.Churn.SummaryCacheTTLSeconds)*time.Second,
		sysLogger,
	)
	recommendationService := service.NewRecommendationService(uowFactory)
	evaluationService := service.NewEvaluationService(uowFactory, natsPub, sysLogger)
	memberService := service.NewMemberService(uowFactory, predictionCache)
	paymentService := service.NewPaymentService(uowFactory, cfg.Midtrans, natsPub, sysLogger)
	authService := service.NewAuthService(uowFactory)

	alertConsumer := service.NewAlertConsumerService(
		pubSub,
		cfg.Churn.PredictionTopic,
		uowFactory,
		wsHub,
		emailService,
		natsPub,
		alertLogger,
	)

	alertHandler := handler.NewAlertHandler(wsHub, alertLogger)

	// 4. Controllers
	return &Container{
		ChurnController: controller.NewChurnController(
			churnService,
			recommendationService,
			evaluationService,
			cfg.Churn.EvaluationLookbackDays,
		),
		MemberController:  controller.NewMemberController(memberService),
		PaymentController: controller.NewPaymentController(paymentService),
		AuthController:    controller.NewAuthController(authService),

		AlertConsumerService: alertConsumer,
		AlertHandler:         alertHandler,
		WebSocketHub:         wsHub,
		Logger:               sysLogger,
	}
}
