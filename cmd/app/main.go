package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sushihentaime/wayfarer/internal/aboutservice"
	"github.com/sushihentaime/wayfarer/internal/common"
	"github.com/sushihentaime/wayfarer/internal/heroservice"
	"github.com/sushihentaime/wayfarer/internal/locationservice"
	"github.com/sushihentaime/wayfarer/internal/mailservice"
	"github.com/sushihentaime/wayfarer/internal/mediaservice"
	"github.com/sushihentaime/wayfarer/internal/newsletterservice"
	"github.com/sushihentaime/wayfarer/internal/postservice"
	"github.com/sushihentaime/wayfarer/internal/storageservice"
)

type uploadGateway interface {
	RequestUploadTarget(ctx context.Context, req *storageservice.UploadRequest) (*storageservice.UploadTarget, error)
}

type application struct {
	config            *Config
	logger            *slog.Logger
	postService       *postservice.PostService
	heroService       *heroservice.HeroService
	aboutService      *aboutservice.AboutService
	locationService   *locationservice.LocationService
	mediaService      *mediaservice.MediaService
	newsletterService *newsletterservice.NewsletterService
	mailService       *mailservice.MailService
	storage           uploadGateway
	broker            *common.MessageBroker
	metrics           *metrics
	visitors          *common.Cache
}

func main() {
	configPath := flag.String("config", ".env", "path to the dotenv configuration file")
	flag.Parse()

	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.dsn(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	if err := common.Migrate(cfg.MigrationsPath, cfg.dsn()); err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gateway, err := storageservice.New(context.Background(), storageservice.Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretKey,
	})
	if err != nil {
		logger.Error("failed to initialize object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		postService:     postservice.NewPostService(db),
		heroService:     heroservice.NewHeroService(db),
		aboutService:    aboutservice.NewAboutService(db),
		locationService: locationservice.NewLocationService(db),
		mediaService:    mediaservice.NewMediaService(db, gateway, logger),
		storage:         gateway,
		metrics:         newMetrics(prometheus.NewRegistry(), db),
		visitors:        newVisitorCache(),
	}

	// The message broker is optional. Without it subscribers get no welcome e-mail.
	var producer common.MessageProducer
	if uri := cfg.brokerURI(); uri != "" {
		broker, err := common.NewMessageBroker(uri)
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupNewsletterExchange(broker)
		if err != nil {
			logger.Error("failed to setup the newsletter exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		app.broker = broker
		producer = broker
		app.mailService = mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, cfg.SiteURL, logger)
		app.mailService.SendWelcomeEmail()
	} else {
		logger.Warn("RABBITMQ_HOST is not set, newsletter welcome e-mails are disabled")
	}

	app.newsletterService = newsletterservice.NewNewsletterService(db, producer, logger)

	// Start the HTTP server
	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
