package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/witherings/PocePao-sub001/internal/api"
	"github.com/witherings/PocePao-sub001/internal/config"
	consumer2 "github.com/witherings/PocePao-sub001/internal/consumer"
	"github.com/witherings/PocePao-sub001/internal/notifier"
	"github.com/witherings/PocePao-sub001/internal/repository"
	"github.com/witherings/PocePao-sub001/internal/service"
	"github.com/witherings/PocePao-sub001/migrations"
)

func connectDBEnv(host, port, user, pass, dbname string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("✅ Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("❌ Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, dbname, host, port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", dbname, host, port, err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	db, err := connectDBEnv(
		envOr("DB_HOST", "127.0.0.1"),
		envOr("DB_PORT", "3306"),
		envOr("DB_USER", "root"),
		os.Getenv("DB_PASS"),
		envOr("DB_NAME", "pokepao"),
	)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateCatalog(3, db); err != nil {
		log.Fatalf("Failed to migrate catalog tables: %v", err)
	}
	if err := migrations.AutoMigrateOrders(3, db); err != nil {
		log.Fatalf("Failed to migrate order tables: %v", err)
	}
	if err := migrations.AutoMigrateReservations(3, db); err != nil {
		log.Fatalf("Failed to migrate reservations table: %v", err)
	}
	if err := migrations.AutoMigrateSite(3, db); err != nil {
		log.Fatalf("Failed to migrate site tables: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: envOr("REDIS_ADDR", "localhost:6379"),
	})

	kafkaWriter := config.NewKafkaWriter(config.EventsTopic)

	menuRepo := repository.NewMenuRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	contentRepo := repository.NewContentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	catalogService := service.NewCatalogService(*menuRepo, *ingredientRepo, rdb)
	cartService := service.NewCartService(rdb)
	orderService := service.NewOrderService(*orderRepo, kafkaWriter, rdb)
	reservationService := service.NewReservationService(*reservationRepo, kafkaWriter)
	siteService := service.NewSiteService(*galleryRepo, *contentRepo)
	settingsService := service.NewSettingsService(*settingsRepo, rdb)
	snapshotService := service.NewSnapshotService(*snapshotRepo, *menuRepo, *ingredientRepo, *contentRepo, catalogService)
	authService := service.NewAuthService(*adminRepo, rdb)

	catalogHandler := api.NewCatalogHandler(*catalogService)
	cartHandler := api.NewCartHandler(*cartService)
	orderHandler := api.NewOrderHandler(*orderService)
	reservationHandler := api.NewReservationHandler(*reservationService)
	siteHandler := api.NewSiteHandler(*siteService)
	adminHandler := api.NewAdminHandler(*authService, *snapshotService, *settingsService)

	if err := catalogService.PreWarmCache(context.Background()); err != nil {
		log.Printf("Failed to pre-warm ingredient cache: %v", err)
	}

	// notifier consumer
	if os.Getenv("ENV") != "test" {
		reader := config.NewKafkaReader(config.EventsTopic, "pokepao-notifier")
		telegram := notifier.NewTelegramFromEnv()
		consumer := consumer2.NewConsumer(reader, telegram)
		go consumer.Start(context.Background())
	}

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// Public routes, dark while maintenance mode is on
	public := e.Group("", api.Maintenance(settingsService))
	public.GET("/menu", catalogHandler.GetMenu)
	public.GET("/menu/:id", catalogHandler.GetMenuItem)
	public.GET("/ingredients", catalogHandler.GetIngredients)
	public.POST("/bowls/price", catalogHandler.PriceBowl)
	public.GET("/bowls/starting-prices", catalogHandler.GetStartingPrices)
	public.GET("/gallery", siteHandler.GetGallery)
	public.GET("/content", siteHandler.GetContentBlocks)
	public.GET("/content/:slug", siteHandler.GetContentBlock)
	public.GET("/cart", cartHandler.GetCart)
	public.POST("/cart/items", cartHandler.AddItem)
	public.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	public.PATCH("/cart/items/:id", cartHandler.UpdateItem)
	public.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	public.DELETE("/cart", cartHandler.ClearCart)
	public.POST("/orders", orderHandler.CreateOrder)
	public.POST("/reservations", reservationHandler.CreateReservation)

	// Admin panel, reachable during maintenance
	e.POST("/admin/login", adminHandler.Login)

	admin := e.Group("/admin", echojwt.JWT(service.JWTSecret()))
	admin.POST("/menu", catalogHandler.CreateMenuItem)
	admin.PUT("/menu/:id", catalogHandler.UpdateMenuItem)
	admin.DELETE("/menu/:id", catalogHandler.DeleteMenuItem)
	admin.POST("/ingredients", catalogHandler.CreateIngredient)
	admin.PUT("/ingredients/:id", catalogHandler.UpdateIngredient)
	admin.DELETE("/ingredients/:id", catalogHandler.DeleteIngredient)
	admin.POST("/gallery", siteHandler.CreateGalleryImage)
	admin.PUT("/gallery/:id", siteHandler.UpdateGalleryImage)
	admin.DELETE("/gallery/:id", siteHandler.DeleteGalleryImage)
	admin.PUT("/content/:slug", siteHandler.UpsertContentBlock)
	admin.DELETE("/content/:slug", siteHandler.DeleteContentBlock)
	admin.GET("/orders", orderHandler.GetOrders)
	admin.GET("/orders/:id", orderHandler.GetOrder)
	admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
	admin.GET("/reservations", reservationHandler.GetReservations)
	admin.PUT("/reservations/:id/status", reservationHandler.UpdateReservationStatus)
	admin.DELETE("/reservations/:id", reservationHandler.DeleteReservation)
	admin.POST("/snapshots", adminHandler.CreateSnapshot)
	admin.GET("/snapshots", adminHandler.GetSnapshots)
	admin.POST("/snapshots/:id/restore", adminHandler.RestoreSnapshot)
	admin.DELETE("/snapshots/:id", adminHandler.DeleteSnapshot)
	admin.GET("/settings/maintenance", adminHandler.GetMaintenance)
	admin.PUT("/settings/maintenance", adminHandler.SetMaintenance)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "pokepao-backend",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + envOr("PORT", "8080")))
}
