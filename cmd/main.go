package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sreerojavusa/Travelgear/internal/auth"
	"github.com/sreerojavusa/Travelgear/internal/cart"
	"github.com/sreerojavusa/Travelgear/internal/catalog"
	"github.com/sreerojavusa/Travelgear/internal/checkout"
	"github.com/sreerojavusa/Travelgear/internal/events"
	h "github.com/sreerojavusa/Travelgear/internal/http"
	"github.com/sreerojavusa/Travelgear/internal/payment"
	"github.com/sreerojavusa/Travelgear/internal/rentals"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	StorageBackend string
	RedisAddr      string
	RedisPassword  string
	MongoURI       string
	MongoDBName    string

	CatalogDBPath string
	RentalsDBURL  string
	RentalsDBPath string
	MigrationsDir string

	TaxRate  decimal.Decimal
	Currency string

	JWTSecret  string
	SessionTTL time.Duration

	PaymentGatewayURL string
	PaymentDelay      time.Duration
	PaymentFailurePct int

	KafkaBrokers string
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		StorageBackend: getEnv("STORAGE_BACKEND", "redis"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "travelgear"),

		CatalogDBPath: getEnv("CATALOG_DB_PATH", "travelgear_catalog.db"),
		RentalsDBURL:  getEnv("RENTALS_DATABASE_URL", ""),
		RentalsDBPath: getEnv("RENTALS_DB_PATH", "travelgear_rentals.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		TaxRate:  getEnvDecimal("TAX_RATE", "0.18"),
		Currency: getEnv("CURRENCY", "INR"),

		JWTSecret:  getEnv("JWT_SECRET", "travelgear-dev-secret"),
		SessionTTL: 72 * time.Hour,

		PaymentGatewayURL: getEnv("PAYMENT_GATEWAY_URL", ""),
		PaymentDelay:      2 * time.Second,
		PaymentFailurePct: getEnvInt("PAYMENT_FAILURE_PCT", 0),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	raw := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, defaultValue)
		return decimal.RequireFromString(defaultValue)
	}
	return d
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := loadConfig()
	ctx := context.Background()

	// Slot store for carts, wishlists and checkout sessions
	var redisClient *redis.Client
	var store storage.SlotStore
	switch cfg.StorageBackend {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		store = storage.NewRedisStore(redisClient)
	case "mongo":
		mongoDB, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoDB.Client().Disconnect(ctx)
		log.Printf("Connected to MongoDB at %s", cfg.MongoURI)
		store = storage.NewMongoStore(mongoDB)
	case "memory":
		log.Println("using in-memory slot store; state is lost on restart")
		store = storage.NewMemoryStore()
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	// Catalog
	catalogRepo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalogRepo.Close()
	if err := catalogRepo.RunMigrations(filepath.Join(cfg.MigrationsDir, "catalog")); err != nil {
		log.Fatalf("Failed to migrate catalog database: %v", err)
	}

	var itemCache catalog.ItemCache = catalog.NopCache{}
	if redisClient != nil {
		itemCache = catalog.NewRedisCache(redisClient)
	}
	catalogSvc := catalog.NewService(catalogRepo, itemCache)

	// Rentals
	var rentalsRepo *rentals.Repository
	if cfg.RentalsDBURL != "" {
		rentalsRepo, err = rentals.NewPostgresRepository(cfg.RentalsDBURL)
	} else {
		rentalsRepo, err = rentals.NewSQLiteRepository(cfg.RentalsDBPath)
	}
	if err != nil {
		log.Fatalf("Failed to open rentals database: %v", err)
	}
	defer rentalsRepo.Close()
	if err := rentalsRepo.RunMigrations(filepath.Join(cfg.MigrationsDir, "rentals")); err != nil {
		log.Fatalf("Failed to migrate rentals database: %v", err)
	}

	// Payment gateway: external HTTP processor when configured, otherwise
	// the simulated one.
	var gateway payment.Gateway
	if cfg.PaymentGatewayURL != "" {
		gateway = payment.NewHTTPGateway(cfg.PaymentGatewayURL)
		log.Printf("using payment gateway at %s", cfg.PaymentGatewayURL)
	} else {
		gateway = payment.NewSimulatedGateway(cfg.PaymentDelay, cfg.PaymentFailurePct)
		log.Println("using simulated payment gateway")
	}

	// Events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(splitBrokers(cfg.KafkaBrokers)...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("publishing rental events to %s", cfg.KafkaBrokers)
	}

	cartSvc := cart.NewService(store, catalogSvc)
	checkoutSvc := checkout.NewService(
		store, cartSvc, catalogSvc, gateway, rentalsRepo, publisher,
		cfg.TaxRate, cfg.Currency,
	)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)

	router := h.NewRouter(h.RouterDeps{
		Tokens:         tokens,
		Catalog:        h.NewCatalogHandler(catalogSvc),
		Cart:           h.NewCartHandler(cartSvc, cfg.TaxRate),
		Wishlist:       h.NewWishlistHandler(cartSvc),
		Checkout:       h.NewCheckoutHandler(checkoutSvc),
		Rentals:        h.NewRentalsHandler(rentalsRepo),
		Session:        h.NewSessionHandler(tokens),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "travelgear"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Travelgear storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
