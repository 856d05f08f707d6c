package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appcache "github.com/hanam197/cosmetic-ecommerce-web-be/cache"
	"github.com/hanam197/cosmetic-ecommerce-web-be/middleware"
	"github.com/hanam197/cosmetic-ecommerce-web-be/repository"
	"github.com/hanam197/cosmetic-ecommerce-web-be/routes"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Load environment variables
	_ = godotenv.Load()

	log.Info().Msg("✅ Starting application...")

	// Init Mongo
	db := initDatabase(log)
	productRepo := repository.NewMongoProductRepository(db.Database(envOr("MONGO_DB", "cosmetics")))
	cartRepo := repository.NewMongoCartRepository(db.Database(envOr("MONGO_DB", "cosmetics")))

	// Optional product cache
	productCache := initCache(log)

	cartService := services.NewCartService(cartRepo)
	productService := services.NewProductService(productRepo, productCache, cacheTTL())

	// Gin setup
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, productService, cartService)

	// Start server
	port := envOr("PORT", "8080")
	log.Info().Msgf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

// initDatabase opens the Mongo connection and sets up indexes. A failed
// ping leaves the service running in degraded mode (every request will
// fail with 500) instead of crashing, so a late-starting database can
// catch up without a restart.
func initDatabase(log zerolog.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := envOr("MONGODB_URI", "mongodb://localhost:27017")
	client, err := repository.Connect(ctx, uri)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid MongoDB configuration")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Warn().Err(err).Msg("⚠️ MongoDB unreachable, continuing in degraded mode")
		return client
	}
	log.Info().Str("uri", uri).Msg("✅ MongoDB connected")

	if err := repository.EnsureIndexes(ctx, client.Database(envOr("MONGO_DB", "cosmetics"))); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to create indexes")
	}
	return client
}

// initCache builds the Redis-backed product cache; empty REDIS_ADDR
// disables caching entirely.
func initCache(log zerolog.Logger) appcache.Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	c := appcache.NewRedisCache(client, "cosmetics")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️ Redis unreachable, product cache disabled")
		return nil
	}
	log.Info().Str("addr", addr).Msg("✅ Redis connected, product cache enabled")
	return c
}

func cacheTTL() time.Duration {
	seconds, err := strconv.Atoi(envOr("PRODUCT_CACHE_TTL", "60"))
	if err != nil || seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
