package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cartapp "github.com/wyfcoding/shopping/internal/cart/application"
	cartdomain "github.com/wyfcoding/shopping/internal/cart/domain"
	cartadapter "github.com/wyfcoding/shopping/internal/cart/infrastructure/adapter"
	cartmessaging "github.com/wyfcoding/shopping/internal/cart/infrastructure/messaging"
	cartmysql "github.com/wyfcoding/shopping/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/wyfcoding/shopping/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/shopping/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/shopping/internal/catalog/domain"
	catalogmessaging "github.com/wyfcoding/shopping/internal/catalog/infrastructure/messaging"
	catalogmysql "github.com/wyfcoding/shopping/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/shopping/internal/catalog/interfaces/http"
	offerapp "github.com/wyfcoding/shopping/internal/offer/application"
	offerdomain "github.com/wyfcoding/shopping/internal/offer/domain"
	offeradapter "github.com/wyfcoding/shopping/internal/offer/infrastructure/adapter"
	offermessaging "github.com/wyfcoding/shopping/internal/offer/infrastructure/messaging"
	offermysql "github.com/wyfcoding/shopping/internal/offer/infrastructure/persistence/mysql"
	offerhttp "github.com/wyfcoding/shopping/internal/offer/interfaces/http"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var configPath = flag.String("config", "configs/server/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 初始化配置
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 初始化日志
	logCfg := &logging.Config{
		Service:    cfg.Server.Name,
		Module:     "shopping",
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 初始化指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)
	if cfg.Metrics.Enabled {
		go metricsImpl.ExposeHTTP(cfg.Metrics.Port)
	}

	// 4. 初始化数据库
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	// Auto Migrate (仅用于开发方便)
	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(
			&catalogdomain.Product{},
			&offerdomain.Offer{},
			&cartdomain.Cart{},
			&cartdomain.CartItem{},
			&outbox.Message{},
		); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka & Outbox
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)
	outboxMgr := outbox.NewManager(db.RawDB(), logger.Logger)
	pusher := func(ctx context.Context, topic, key string, payload []byte) error {
		return kafkaProducer.PublishToTopic(ctx, topic, []byte(key), payload)
	}
	outboxProcessor := outbox.NewProcessor(outboxMgr, pusher, 100, 2*time.Second)

	// 6. 仓储
	productRepo := catalogmysql.NewProductRepository(db.RawDB())
	offerRepo := offermysql.NewOfferRepository(db.RawDB())
	cartRepo := cartmysql.NewCartRepository(db.RawDB())

	// 7. 应用服务
	catalogSvc := catalogapp.NewCatalogService(productRepo, catalogmessaging.NewOutboxPublisher(outboxMgr))
	offerSvc := offerapp.NewOfferService(
		offerRepo,
		offeradapter.NewCatalogAdapter(catalogSvc),
		offermessaging.NewOutboxPublisher(outboxMgr),
	)
	cartCommandSvc := cartapp.NewCartCommandService(
		cartRepo,
		cartadapter.NewCatalogAdapter(catalogSvc),
		cartadapter.NewOfferAdapter(offerSvc),
		cartdomain.NewPricingEngine(nil),
		cartmessaging.NewOutboxPublisher(outboxMgr),
	)
	cartSvc := cartapp.NewCartService(cartCommandSvc, cartapp.NewCartQueryService(cartRepo))

	// 8. 接口层
	gin.SetMode(gin.ReleaseMode)
	if cfg.Server.Environment == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	cataloghttp.NewCatalogHandler(catalogSvc).RegisterRoutes(r)
	offerhttp.NewOfferHandler(offerSvc).RegisterRoutes(r)
	carthttp.NewCartHandler(cartSvc).RegisterRoutes(r)

	// 9. 启动
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		outboxProcessor.Start()
		<-ctx.Done()
		outboxProcessor.Stop()
		return nil
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// 10. 优雅关闭
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
