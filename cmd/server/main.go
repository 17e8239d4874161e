package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/example/shopfront/internal/api"
	"github.com/example/shopfront/internal/checkout"
	"github.com/example/shopfront/internal/config"
	"github.com/example/shopfront/internal/domain/cart"
	"github.com/example/shopfront/internal/domain/catalog"
	"github.com/example/shopfront/internal/event"
	"github.com/example/shopfront/internal/infrastructure/kafka"
	"github.com/example/shopfront/internal/infrastructure/store"
	"github.com/example/shopfront/internal/payment"
)

func main() {
	cfg := config.Load()

	if cfg.PaymentSecretKey == "" {
		log.Fatal("[Server] PAYMENT_SECRET_KEY environment variable is required")
	}

	log.Println("[Server] ========================================")
	log.Println("[Server] Shopfront")
	log.Println("[Server] ========================================")
	log.Printf("[Server] Catalog source: %s", cfg.CatalogSource)
	log.Printf("[Server] Snapshot store: %s", cfg.SnapshotStore)
	log.Printf("[Server] Currency:       %s", cfg.Currency)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event publishing is optional; without brokers events are discarded
	var events event.Publisher = event.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		events = producer
		log.Printf("[Server] Publishing events to %v (topic %s)", cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	source, closeSource := buildCatalogSource(ctx, cfg)
	defer closeSource()

	snapshots, closeSnapshots := buildSnapshotStore(cfg)
	defer closeSnapshots()

	cartStore := cart.NewStore(source, snapshots, events)
	if err := cartStore.Initialize(ctx); err != nil {
		// Catalog failure is not fatal: the storefront serves an empty
		// catalog and every cart mutation is a no-op
		log.Printf("[Server] Failed to initialize cart: %v", err)
	}

	paymentClient := payment.NewClient(cfg.PaymentAPIBase, cfg.PaymentSecretKey)
	orchestrator := checkout.NewOrchestrator(paymentClient, events,
		cfg.Currency, cfg.SuccessURL, cfg.CancelURL)

	handlers := api.NewHandlers(cartStore, orchestrator)
	router := api.NewRouter(handlers)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] Listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Server] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Server] Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}

// buildCatalogSource constructs the configured catalog source once per
// process. Bad wiring here is fatal; a reachable-but-failing source is not.
func buildCatalogSource(ctx context.Context, cfg config.Config) (catalog.Source, func()) {
	switch cfg.CatalogSource {
	case "postgres":
		db, err := store.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[Server] Failed to connect to PostgreSQL: %v", err)
		}
		if err := store.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("[Server] Failed to run migrations: %v", err)
		}
		log.Println("[Server] Connected to PostgreSQL")
		return store.NewPostgresCatalog(db), func() { db.Close() }
	case "dynamo":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("[Server] Failed to load AWS config: %v", err)
		}
		client := dynamodb.NewFromConfig(awsCfg)
		return store.NewDynamoCatalog(client, cfg.DynamoTable), func() {}
	default:
		return store.NewStaticCatalog(store.DefaultProducts), func() {}
	}
}

func buildSnapshotStore(cfg config.Config) (store.SnapshotStoreInterface, func()) {
	switch cfg.SnapshotStore {
	case "redis":
		s := store.NewRedisSnapshotStore(cfg.RedisAddr, cfg.RedisKey)
		if err := s.Ping(context.Background()); err != nil {
			log.Fatalf("[Server] Failed to connect to Redis: %v", err)
		}
		log.Println("[Server] Connected to Redis")
		return s, func() { s.Close() }
	case "memory":
		return store.NewMemorySnapshotStore(), func() {}
	default:
		return store.NewFileSnapshotStore(cfg.SnapshotPath), func() {}
	}
}
