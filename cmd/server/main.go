package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"knowledge-base/internal/attachment"
	"knowledge-base/internal/config"
	"knowledge-base/internal/event"
	"knowledge-base/internal/handler"
	"knowledge-base/internal/idgen"
	"knowledge-base/internal/infrastructure/database"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
	"knowledge-base/internal/middleware"
	"knowledge-base/internal/notification"
	"knowledge-base/internal/repository"
	"knowledge-base/internal/search"
	"knowledge-base/internal/service"
	"knowledge-base/internal/task"
	"knowledge-base/internal/validator"
)

// memoryFirstResourceKey is the first key handed out by the in-memory store.
const memoryFirstResourceKey = 1

// stores groups the persistence collaborators of one store driver.
type stores struct {
	articles      repository.ArticleRepository
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
	tx            repository.Transactor
}

// searchIndex is implemented by the Redis index and the no-op index.
type searchIndex interface {
	service.Indexer
	service.Searcher
	Ping(ctx context.Context) error
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()
	pingers := map[string]handler.Pinger{}

	// Persistence
	var st stores
	if cfg.UsePostgres() {
		pool := openPostgres(ctx, cfg)
		defer pool.Close()
		pingers["database"] = pool

		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		st = stores{
			articles:      repository.NewPostgresArticleRepository(pool),
			subscriptions: repository.NewPostgresSubscriptionRepository(pool),
			users:         repository.NewPostgresUserRepository(pool),
			tx:            repository.NewPostgresTransactor(pool),
		}
	} else {
		logger.Warn("Using in-memory article store, data is lost on restart")
		mem := repository.NewMemoryStore(memoryFirstResourceKey)
		st = stores{articles: mem, subscriptions: mem, users: mem, tx: mem}
	}

	// Search index
	var index searchIndex = search.NopIndexer{}
	if cfg.RedisAddr != "" {
		client := openRedis(ctx, cfg)
		defer client.Close()
		redisIndex := search.NewRedisIndexer(client)
		index = redisIndex
		pingers["search"] = redisIndex
	} else {
		logger.Info("REDIS_ADDR not set, search index disabled")
	}

	ids, err := idgen.NewEncoder(cfg.PublicIDSalt)
	if err != nil {
		logger.Fatal("Failed to create public id encoder",
			slog.String("error", err.Error()))
	}

	v := validator.NewValidator()
	identities := repository.NewIdentityResolver(st.users)

	// Notification: the notifier publishes, background workers deliver
	bus := event.NewBus(cfg.WorkerPoolSize, cfg.EventBufferSize)
	notifier, err := notification.NewNotifier(notification.Config{
		AddedEnabled:   cfg.NotifyAddedEnabled,
		UpdatedEnabled: cfg.NotifyUpdatedEnabled,
		FromName:       cfg.MailFromName,
		FromAddress:    cfg.MailFromAddress,
		MailDomain:     cfg.MailDomain,
	}, identities, bus, ids)
	if err != nil {
		logger.Fatal("Failed to create notifier",
			slog.String("error", err.Error()))
	}

	var sender notification.Sender = notification.LogSender{}
	if cfg.SMTPHost != "" {
		sender = notification.NewSMTPSender(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			ForceSSL: cfg.SMTPForceSSL,
		})
	} else {
		logger.Info("SMTP_HOST not set, change mail is logged instead of sent")
	}
	dispatcher := notification.NewMailDispatcher(st.subscriptions, sender, v, notification.DefaultDispatchTimeout)
	bus.Subscribe(event.TopicArticleMail, dispatcher.Handle)
	bus.Subscribe(event.TopicPushNotification, notification.PushListener{}.Handle)

	// Attachments and their temp dir sweep
	files, err := attachment.NewFileStore(cfg.AttachmentsDir)
	if err != nil {
		logger.Fatal("Failed to create attachment store",
			slog.String("error", err.Error()))
	}

	scheduler := task.NewScheduler()
	if err := scheduler.Register(cfg.AttachmentsSweepSchedule, task.NewSweepAttachmentsJob(files, cfg.AttachmentsKeepTemp)); err != nil {
		logger.Fatal("Failed to schedule attachment sweep",
			slog.String("schedule", cfg.AttachmentsSweepSchedule),
			slog.String("error", err.Error()))
	}
	scheduler.Start()

	// Initialize services
	articleService := service.NewArticleService(
		st.articles,
		st.subscriptions,
		st.tx,
		index,
		notifier,
		files,
		identities,
		v,
		cfg.PositionPolicy,
	)
	exportService := service.NewExportService(articleService)
	importService := service.NewImportService(articleService)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, ids)
	attachmentHandler := handler.NewAttachmentHandler(articleService, files, ids)
	subscriptionHandler := handler.NewSubscriptionHandler(articleService)
	searchHandler := handler.NewSearchHandler(index, ids)
	userHandler := handler.NewUserHandler(st.users, v)
	exportHandler := handler.NewExportHandler(exportService)
	importHandler := handler.NewImportHandler(importService)
	healthHandler := handler.NewHealthHandler(pingers)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/search", searchHandler.Search)

		// Write routes share one per-client limiter
		writes := middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

		groups := v1.Group("/groups/:groupId")
		{
			groups.GET("/articles", articleHandler.ListChildren)
			groups.POST("/articles", writes, articleHandler.CreateArticle)
			groups.DELETE("/articles", writes, articleHandler.DeleteGroup)
			groups.POST("/reindex", writes, articleHandler.ReindexGroup)
			groups.GET("/export", exportHandler.ExportGroup)
			groups.POST("/import", writes, importHandler.ImportGroup)
			groups.POST("/subscriptions", writes, subscriptionHandler.Subscribe)
			groups.DELETE("/subscriptions", writes, subscriptionHandler.Unsubscribe)
		}

		articles := v1.Group("/articles/:resourceKey")
		{
			articles.GET("", articleHandler.GetArticle)
			articles.PUT("", writes, articleHandler.UpdateArticle)
			articles.DELETE("", writes, articleHandler.DeleteArticle)
			articles.PUT("/position", writes, articleHandler.MoveArticle)
			articles.GET("/versions", articleHandler.ListVersions)
			articles.GET("/versions/:version", articleHandler.GetVersion)
			articles.POST("/attachments", writes, attachmentHandler.PrepareAttachments)
		}

		v1.POST("/attachments/:dir", writes, attachmentHandler.Upload)

		users := v1.Group("/users/:userId")
		{
			users.GET("", userHandler.GetUser)
			users.PUT("", writes, userHandler.PutUser)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.String("position_policy", string(cfg.PositionPolicy)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop accepting requests first so no new events are published
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Stopping scheduler")
	scheduler.Stop()
	logger.Info("Draining event bus")
	bus.Shutdown()

	logger.Info("Server exited")
}

func openPostgres(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	poolConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.MigrationsDir, poolConfig.URL()); err != nil {
			logger.Fatal("Failed to migrate database",
				slog.String("dir", cfg.MigrationsDir),
				slog.String("error", err.Error()))
		}
	}

	pool, err := database.NewPostgres(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	return pool
}

func openRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	client, err := database.NewRedis(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Fatal("Failed to connect to search index",
			slog.String("error", err.Error()))
	}
	return client
}
