package main

import (
	"log"

	"github.com/bikeverse/api/internal/auth"
	"github.com/bikeverse/api/internal/config"
	"github.com/bikeverse/api/internal/db"
	"github.com/bikeverse/api/internal/handlers"
	"github.com/bikeverse/api/internal/middleware"
	"github.com/bikeverse/api/internal/services"
	"github.com/bikeverse/api/internal/storage"
	"github.com/bikeverse/api/internal/store"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	database := client.Database(cfg.DBName)

	images, err := storage.NewMinio(storage.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("object storage: %v", err)
	}

	partsColl := store.NewMongoCollection(database.Collection("parts"))
	usersColl := store.NewMongoCollection(database.Collection("users"))
	ordersColl := store.NewMongoCollection(database.Collection("orders"))
	reviewsColl := store.NewMongoCollection(database.Collection("reviews"))
	runner := store.NewMongoRunner(client)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	guard := middleware.NewGuard(issuer)

	app := handlers.NewApp(
		guard,
		handlers.NewPartHandler(services.NewPartService(partsColl, cfg.PartUpsertOnStock), images),
		handlers.NewUserHandler(services.NewUserService(usersColl, ordersColl, runner), issuer),
		handlers.NewOrderHandler(services.NewOrderService(ordersColl)),
		handlers.NewReviewHandler(services.NewReviewService(reviewsColl)),
	)

	log.Fatal(app.Listen(":" + cfg.Port))
}
