// @title Feed API
// @version 1.0
// @description Posts with images, paginated feed and owner-only edits.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "feed-api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"feed-api/bootstrap"
	"feed-api/config"
	"feed-api/database"
	"feed-api/internal/controllers"
	"feed-api/internal/eventbroker"
	"feed-api/internal/middleware"
	"feed-api/internal/repository"
	"feed-api/internal/routes"
	"feed-api/internal/services"
	"feed-api/internal/storage"
)

const serviceName = "feed-api"

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	initLogger(cfg)
	slog.Info("starting feed api", "env", cfg.Env, "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OtelEndpoint != "" {
		tp, err := initTracer(ctx, cfg)
		if err != nil {
			slog.Error("failed to init tracer", "error", err)
		} else {
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					slog.Error("error shutting down tracer", "error", err)
				}
			}()
		}
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.DisconnectMongo(client); err != nil {
			slog.Error("error disconnecting from database", "error", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureFeedIndexes(ctx, db); err != nil {
		slog.Error("ensure indexes failed", "error", err)
		os.Exit(1)
	}

	var events services.EventPublisher
	if cfg.NatsURL != "" {
		nc, err := nats.Connect(cfg.NatsURL, nats.Name(serviceName))
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer nc.Drain()
		events = eventbroker.NewNatsPublisher(nc)
		slog.Info("publishing post events", "url", cfg.NatsURL)
	}

	root, err := os.Getwd()
	if err != nil {
		slog.Error("cannot resolve working directory", "error", err)
		os.Exit(1)
	}
	files := storage.NewFileStore(root)

	feed := services.NewFeedService(
		repository.NewPostRepository(db),
		repository.NewUserRepository(db),
		files,
		events,
		cfg.PageSize,
	)
	uploader := &controllers.Uploader{Dir: cfg.UploadDir, Files: files}

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Static("/images", cfg.UploadDir)

	app.Use(middleware.BearerCaller(cfg.JWTSecret))
	routes.SetupRoutesFeed(app, feed, uploader)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	slog.Info("signal received, shutting down", "signal", sig.String())

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Warn("forced shutdown", "error", err)
	}
	slog.Info("feed api stopped")
}

func initLogger(cfg config.Config) {
	var handler slog.Handler
	if cfg.Env == "local" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

func initTracer(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OtelEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", cfg.Env),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp, nil
}
