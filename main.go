package main

import (
	"github.com/lehoangkhoi01/fashion-shop-be/cache"
	"github.com/lehoangkhoi01/fashion-shop-be/controllers"
	"github.com/lehoangkhoi01/fashion-shop-be/database"
	"github.com/lehoangkhoi01/fashion-shop-be/events"
	"github.com/lehoangkhoi01/fashion-shop-be/logger"
	"github.com/lehoangkhoi01/fashion-shop-be/middleware"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"
	"github.com/lehoangkhoi01/fashion-shop-be/routes"
	"github.com/lehoangkhoi01/fashion-shop-be/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := LoadConfig()
	logger.Initialize(cfg.Env)
	defer func() { _ = zap.L().Sync() }()

	db, err := database.ConnectPostgres(
		&models.Catalog{},
		&models.Product{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		zap.L().Fatal("Database connection failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Redis connection failed", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer func() { _ = producer.Close() }()
		publisher = producer
	} else {
		zap.L().Info("KAFKA_BROKERS not set, order events disabled")
	}

	store := cache.NewRedisCache(redisClient)

	productRepo := repository.NewGormProductRepository(db)
	catalogRepo := repository.NewGormCatalogRepository(db)
	inventoryRepo := repository.NewGormInventoryRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)

	inventoryService := services.NewInventoryService(inventoryRepo)
	productService := services.NewProductService(productRepo, store)
	catalogService := services.NewCatalogService(catalogRepo, store)
	orderService := services.NewOrderService(orderRepo, productRepo, inventoryService, publisher)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimit())

	routes.RegisterRoutes(r,
		controllers.NewProductController(productService),
		controllers.NewCatalogController(catalogService),
		controllers.NewOrderController(orderService),
		controllers.NewInventoryController(inventoryService),
	)

	zap.L().Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Server error", zap.Error(err))
	}
}
