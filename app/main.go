package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"registration/config"
	"registration/metrics"
	"registration/middleware"
	"registration/services/registration/delivery"
	"registration/services/registration/repository"
	"registration/services/registration/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	// the .env file is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file loaded, using process environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")

	jwtKey, err := config.GetJWTKey()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	bootstrap, err := config.GetBootstrapPrincipal()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	tokens, err := middleware.NewJWT(jwtKey, config.GetJWTIssuer(), config.GetJWTAudience(), config.GetJWTTTL())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	app := fiber.New(config.GetFiberConfig())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCorsAllowOrigins(),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// repositories and usecases
	hasher := usecase.NewBcryptHasher(config.GetBcryptCost())
	personRepo := repository.NewPersonRepository(db)
	merger := usecase.NewPersonMerger(hasher, bootstrap.ID)
	personUC := usecase.NewPersonUseCase(personRepo, merger, m, log, config.GetRequestTimeout())
	authUC := usecase.NewAuthUseCase(personRepo, personUC, hasher, tokens, bootstrap, m, log)

	// delivery
	delivery.NewAuthHandler(app, authUC)
	delivery.NewPersonHandler(app, personUC, tokens)
	delivery.NewMetricsHandler(app, registry)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server shut down gracefully")
}
