package main

import (
	"context"
	"log"

	"limo-booking-service/config"
	bookingHandler "limo-booking-service/internal/module/booking/handler"
	bookingRepositories "limo-booking-service/internal/module/booking/repositories"
	bookingUsecases "limo-booking-service/internal/module/booking/usecases"
	placesHandler "limo-booking-service/internal/module/places/handler"
	placesRepositories "limo-booking-service/internal/module/places/repositories"
	placesUsecases "limo-booking-service/internal/module/places/usecases"
	"limo-booking-service/internal/pkg/adminauth"
	"limo-booking-service/internal/pkg/database"
	"limo-booking-service/internal/pkg/http"
	"limo-booking-service/internal/pkg/httpclient"
	log_internal "limo-booking-service/internal/pkg/log"
	"limo-booking-service/internal/pkg/mailer"
	"limo-booking-service/internal/pkg/messagestream"
	"limo-booking-service/internal/pkg/middleware"
	"limo-booking-service/internal/pkg/redis"
	"limo-booking-service/internal/pkg/scheduler"
	"limo-booking-service/internal/pkg/stripe"
	router "limo-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, &cfg.HttpServer)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init logger
	logger := log_internal.Setup()
	watermillLogger := log_internal.NewWatermillAdapter(logger.Logger)
	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	taskClient := sch.InitClient(&cfg.Redis)
	inspector := sch.InitInspector(&cfg.Redis)
	// init http clients, one breaker per upstream
	upstreams := httpclient.InitUpstreams(&cfg.HttpClient)

	ctx := context.Background()

	gateway := stripe.New(upstreams.Payment, &cfg.Stripe, cfg.App.SiteURL, logger.Logger)
	resend := mailer.NewResend(upstreams.Mail, &cfg.Mail)

	// emails go straight to Resend unless the AMQP queue is enabled
	var notifier bookingUsecases.Notifier = resend
	var publisher message.Publisher
	var subscriber message.Subscriber
	if cfg.MessageStream.Enabled {
		amqp := messagestream.NewAmpq(&cfg.MessageStream, watermillLogger)

		var err error
		// Init Subscriber
		subscriber, err = amqp.NewSubscriber()
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create subscriber", zap.Error(err))
		}

		// Init Publisher
		publisher, err = amqp.NewPublisher()
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create publisher", zap.Error(err))
		}

		if publisher != nil && subscriber != nil {
			notifier = mailer.NewQueue(publisher)
		}
	}

	bookingRepo := bookingRepositories.New(db, logger, redisClient, taskClient, inspector)
	bookingUsecase := bookingUsecases.New(bookingRepo, gateway, notifier, logger, bookingUsecases.Config{
		OperatorEmail:  cfg.Mail.OperatorEmail,
		SessionTTL:     stripe.SessionTTL(cfg.Stripe.SessionTTL),
		EventMarkerTTL: cfg.Stripe.EventMarkerTTL,
	})

	placesRepo := placesRepositories.New(upstreams.Places, redisClient, &cfg.Places, logger)
	placesUsecase := placesUsecases.New(placesRepo, logger, cfg.Places.AutocompleteTTL, cfg.Places.DetailsTTL)

	auth := adminauth.New(&cfg.Admin)
	middleware := middleware.Middleware{
		Log:    logger,
		Auth:   auth,
		Tracer: apm.DefaultTracer,
	}

	validator := validator.New()
	bookingHandler := bookingHandler.BookingHandler{
		Log:          logger,
		Validator:    validator,
		Usecase:      bookingUsecase,
		Publish:      publisher,
		Mailer:       resend,
		Auth:         auth,
		CookieSecure: cfg.Admin.CookieSecure,
	}
	placesHandler := placesHandler.PlacesHandler{
		Log:             logger,
		Usecase:         placesUsecase,
		AutocompleteTTL: cfg.Places.AutocompleteTTL,
		DetailsTTL:      cfg.Places.DetailsTTL,
	}

	var messageRouters []*message.Router

	if publisher != nil && subscriber != nil {
		consumeEmailQueueRouter, err := messagestream.NewRouter(publisher, mailer.TopicSendEmailPoisoned, mailer.HandlerSendEmail, mailer.TopicSendEmail, subscriber, bookingHandler.ConsumeEmailQueue, watermillLogger)
		if err != nil {
			logger.Ctx(ctx).Error("Failed to create consume_email_queue router", zap.Error(err))
		} else {
			messageRouters = append(messageRouters, consumeEmailQueueRouter)
		}
	}

	// start scheduler
	go sch.StartHandler(&cfg.Redis, &cfg.Scheduler,
		[]string{bookingRepositories.TypeExpirePaymentSession},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.ExpirePaymentSession},
	)
	if cfg.Scheduler.MonitoringEnabled {
		go sch.StartMonitoring(&cfg.Redis, &cfg.Scheduler)
	}

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, &bookingHandler, &placesHandler, &middleware)

	return r, messageRouters

}
