package main

import (
	"context"
	"net/http"

	"cvscanner/config"
	"cvscanner/db"
	"cvscanner/handlers"
	"cvscanner/repository"
	"cvscanner/routes"
	"cvscanner/services"

	"go.uber.org/zap"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	var logger *zap.Logger
	var err error
	switch cfg.LogLevel {
	case "debug":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var userRepo repository.UserRepository
	var docRepo repository.DocumentRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}

		conn, err := db.ConnectPostgres(cfg.PostgresURL)
		if err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer conn.Close()

		userRepo = repository.NewPostgresUserRepo(conn)
		docRepo = repository.NewPostgresDocumentRepo(conn)

	case db.Mongo:
		client, err := db.ConnectMongo(context.Background(), cfg.MongoURL)
		if err != nil {
			logger.Fatal("mongo connect failed", zap.Error(err))
		}
		defer client.Disconnect(context.Background())

		userRepo = repository.NewMongoUserRepo(client)
		docRepo = repository.NewMongoDocumentRepo(client)

	default:
		logger.Fatal("DB_TYPE not supported", zap.String("db_type", cfg.DBType))
	}

	categoryRepo := repository.NewCategoryRepo(cfg.CategoriesPath)
	accountService := services.NewAccountService(userRepo, categoryRepo)
	extractionService := services.NewExtractionService()

	authHandler := &handlers.AuthHandler{Service: accountService, Logger: logger}
	cvHandler := &handlers.CVHandler{Extractor: extractionService, Docs: docRepo, Logger: logger}

	handler := routes.SetupRoutes(authHandler, cvHandler, cfg.AllowedOrigins, logger)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("db_type", cfg.DBType))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
