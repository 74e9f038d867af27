package main

import (
	"context"
	"log"
	"time"

	"marketplace-service/config"
	bookinghandler "marketplace-service/internal/module/booking/handler"
	bookingrepo "marketplace-service/internal/module/booking/repositories"
	bookingusecases "marketplace-service/internal/module/booking/usecases"
	cataloghandler "marketplace-service/internal/module/catalog/handler"
	catalogrepo "marketplace-service/internal/module/catalog/repositories"
	catalogusecases "marketplace-service/internal/module/catalog/usecases"
	notifhandler "marketplace-service/internal/module/notification/handler"
	notifrepo "marketplace-service/internal/module/notification/repositories"
	notifusecases "marketplace-service/internal/module/notification/usecases"
	providerhandler "marketplace-service/internal/module/provider/handler"
	providerrepo "marketplace-service/internal/module/provider/repositories"
	providerusecases "marketplace-service/internal/module/provider/usecases"
	userhandler "marketplace-service/internal/module/user/handler"
	userrepo "marketplace-service/internal/module/user/repositories"
	userusecases "marketplace-service/internal/module/user/usecases"
	wallethandler "marketplace-service/internal/module/wallet/handler"
	walletrepo "marketplace-service/internal/module/wallet/repositories"
	walletusecases "marketplace-service/internal/module/wallet/usecases"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/google"
	"marketplace-service/internal/pkg/http"
	"marketplace-service/internal/pkg/httpclient"
	log_internal "marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/mailer"
	"marketplace-service/internal/pkg/messagestream"
	"marketplace-service/internal/pkg/middleware"
	"marketplace-service/internal/pkg/redis"
	"marketplace-service/internal/pkg/scheduler"
	"marketplace-service/internal/pkg/storage"
	"marketplace-service/internal/pkg/token"
	router "marketplace-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sweep := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	startScheduler(cfg, sweep)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *notifhandler.NotificationHandler) {

	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLog := log_internal.Setup()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("error migrate database: %v", err)
		}
	}
	tx := database.NewTransactor(db)

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redis.NewLocker(redisClient)

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// external collaborators
	verifier := google.NewVerifier(&cfg.Google, httpClient, logger)
	mail, err := mailer.New(&cfg.Mailer, logger)
	if err != nil {
		log.Fatalf("error init mailer: %v", err)
	}
	store, err := storage.NewDisk(&cfg.Storage)
	if err != nil {
		log.Fatalf("error init storage: %v", err)
	}
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	location, err := time.LoadLocation(cfg.Notification.Location)
	if err != nil {
		logger.Warn(ctx, "unknown timezone, falling back to UTC", err)
		location = time.UTC
	}

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream, logZap)

	// nil interfaces when the broker is unreachable, never typed nil pointers
	var subscriber message.Subscriber
	if sub, err := amqp.NewSubscriber(); err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	} else {
		subscriber = sub
	}

	var publisher message.Publisher
	if pub, err := amqp.NewPublisher(); err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	} else {
		publisher = pub
	}

	// repositories
	userRepo := userrepo.New(db, logger)
	providerRepo := providerrepo.New(db, logger)
	catalogRepo := catalogrepo.New(db, logger, redisClient)
	bookingRepo := bookingrepo.New(db, logger)
	walletRepo := walletrepo.New(db, logger)
	notifRepo := notifrepo.New(db, logger)

	// usecases
	walletUsecase := walletusecases.New(walletRepo, tx, logger)
	notifUsecase := notifusecases.New(notifRepo, tx, publisher, locker, logger, notifusecases.Options{
		SweepBatch:   cfg.Notification.SweepBatch,
		SweepLockTTL: cfg.Notification.SweepLockTTL,
	})
	bookingUsecase := bookingusecases.New(bookingRepo, tx, locker, walletUsecase, notifUsecase, logger, bookingusecases.Options{
		CommissionRate: cfg.Ledger.CommissionRate,
		PaymentMethod:  cfg.Ledger.PaymentMethod,
		ReminderLead:   cfg.Notification.ReminderLead,
		Location:       location,
	})
	userUsecase := userusecases.New(userRepo, tx, tokens, verifier, mail, store, logger, userusecases.Options{
		ResetTTL: cfg.Auth.ResetTTL,
	})
	providerUsecase := providerusecases.New(providerRepo, tx, store, logger)
	catalogUsecase := catalogusecases.New(catalogRepo, tx, store, logger, catalogusecases.Options{})

	middleware := middleware.Middleware{
		Log:      otelLog,
		Token:    tokens,
		Accounts: userRepo,
	}

	validator := validator.New()
	handlers := router.Handlers{
		User:     &userhandler.UserHandler{Log: otelLog, Validator: validator, Usecase: userUsecase},
		Provider: &providerhandler.ProviderHandler{Log: otelLog, Validator: validator, Usecase: providerUsecase},
		Catalog:  &cataloghandler.CatalogHandler{Log: otelLog, Validator: validator, Usecase: catalogUsecase},
		Booking:  &bookinghandler.BookingHandler{Log: otelLog, Validator: validator, Usecase: bookingUsecase},
		Wallet:   &wallethandler.WalletHandler{Log: otelLog, Validator: validator, Usecase: walletUsecase},
		Notification: &notifhandler.NotificationHandler{
			Log:     otelLog,
			Usecase: notifUsecase,
		},
	}

	var messageRouters []*message.Router

	if publisher == nil || subscriber == nil {
		logger.Warn(ctx, "message broker unavailable, notification retry router not started")
	} else {
		notificationRetryRouter, err := messagestream.NewRouter(publisher, notifusecases.TopicPoisoned, "notification_retry_handler",
			notifusecases.TopicRetry, subscriber, handlers.Notification.ConsumeRetry, amqp.Logger(), cfg.MessageStream.MaxRetries)
		if err != nil {
			logger.Error(ctx, "Failed to create notification_retry router", err)
		} else {
			messageRouters = append(messageRouters, notificationRetryRouter)
		}
	}

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)
	serverHttp.Static(cfg.Storage.PublicURL, cfg.Storage.Root)

	r := router.Initialize(serverHttp, handlers, &middleware)

	return r, messageRouters, handlers.Notification

}

func startScheduler(cfg *config.Config, h *notifhandler.NotificationHandler) {
	s := scheduler.Scheduler{Log: log_internal.GetLogger()}

	if cfg.Scheduler.Mode == "local" {
		if _, err := s.StartLocal(context.Background(), cfg.Scheduler.SweepInterval, "notification-sweep", h.Sweep); err != nil {
			log.Fatalf("error start local scheduler: %v", err)
		}
		return
	}

	go s.StartPeriodic(&cfg.Redis, cfg.Scheduler.SweepInterval, scheduler.TypeNotificationSweep)
	go s.StartHandler(&cfg.Redis, cfg.Scheduler.Concurrency,
		[]string{scheduler.TypeNotificationSweep},
		[]func(ctx context.Context, t *asynq.Task) error{h.SweepTask})
	go s.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)
}
