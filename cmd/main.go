package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-order-system/internal/config"
	"food-order-system/internal/database"
	"food-order-system/internal/logger"
	"food-order-system/internal/messaging"
	"food-order-system/internal/services/menu"
	"food-order-system/internal/services/notification"
	"food-order-system/internal/services/order"
	"food-order-system/migrations"
)

func main() {
	var (
		mode          = flag.String("mode", "api", "Service mode (api, notification-subscriber)")
		port          = flag.Int("port", 0, "HTTP port (overrides config)")
		configPath    = flag.String("config", "config.yaml", "Path to config file")
		maxConcurrent = flag.Int("max-concurrent", 50, "Maximum concurrent order creations")
		prefetch      = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "api":
		if err := runAPIServer(ctx, cfg, log, *port, *maxConcurrent); err != nil {
			log.Error("service_failed", "API server failed", requestID, err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := runNotificationSubscriber(ctx, cfg, log, *prefetch); err != nil {
			log.Error("service_failed", "Notification subscriber failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runAPIServer runs the HTTP API
func runAPIServer(ctx context.Context, cfg *config.Config, log *logger.Logger, port, maxConcurrent int) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrations.Files); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Order event notifications are optional: the API must keep taking
	// orders when no broker is configured or reachable.
	var publisher *messaging.Publisher
	if cfg.NotificationsEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			log.Warn("rabbitmq_unavailable", "Running without order event notifications", requestID, map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer conn.Close()
			publisher = messaging.NewPublisher(conn, log)
			log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)
		}
	}

	orderService := order.NewService(db, publisher, log, maxConcurrent)
	orderHandler := order.NewHandler(orderService, log)

	menuService := menu.NewService(db, log)
	menuHandler := menu.NewHandler(menuService, log)

	mux := http.NewServeMux()
	orderHandler.RegisterRoutes(mux)
	menuHandler.RegisterRoutes(mux)

	if port == 0 {
		port = cfg.Server.Port
	}
	if port == 0 {
		port = 3001
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: withCORS(mux),
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Food Order API started on port %d", port), requestID, map[string]interface{}{
			"port":           port,
			"max_concurrent": maxConcurrent,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runNotificationSubscriber consumes order events and prints them
func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	if !cfg.NotificationsEnabled() {
		return fmt.Errorf("rabbitmq is not configured")
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.OrderEventsQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)

	return subscriber.Start(ctx)
}

// withCORS allows the mobile client to call the API from any origin
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
