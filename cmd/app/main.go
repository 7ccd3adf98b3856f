package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"food-service/configs"
	"food-service/internal/comment"
	"food-service/internal/food"
	"food-service/internal/migrate"
	"food-service/internal/shared/db"
	"food-service/internal/shared/httpx"
	"food-service/internal/storage/s3"
	"food-service/internal/user"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("food-service"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	_ = godotenv.Load()
	cfg := configs.LoadConfig()

	ctx := context.Background()
	otelShutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = otelShutdown(c)
	}()

	store, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer store.Close()

	if cfg.AutoMigrate {
		if err := migrate.AutoMigrateAll(store.DB); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	var rdb *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		defer rdb.Close()
	}

	uploads, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
		Folder:    cfg.UploadFolder,
		MaxWidth:  cfg.ImageMaxWidth,
		MaxHeight: cfg.ImageMaxHeight,
		Crop:      cfg.ImageCrop,
	})
	if err != nil {
		log.Fatalf("object storage: %v", err)
	}
	if err := uploads.EnsureBucket(ctx); err != nil {
		log.Fatalf("object storage bucket: %v", err)
	}

	fh := food.NewHandler(food.NewService(food.NewRepository(store.DB), uploads, cfg.AllowedFormats))
	ch := comment.NewHandler(comment.NewService(comment.NewRepository(store.DB, rdb)))
	uh := user.NewHandler(user.NewService(user.NewRepository(store.DB)))

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	mux.Handle("POST /foods", httpx.Wrap(fh.Create))
	mux.Handle("GET /foods", httpx.Wrap(fh.List))

	mux.Handle("GET /{$}", httpx.Wrap(ch.List))
	mux.Handle("POST /{$}", httpx.Wrap(ch.Create))
	mux.Handle("GET /{commentId}", httpx.Wrap(ch.Get))
	mux.Handle("POST /{id}/like", httpx.Wrap(ch.Like))

	mux.Handle("POST /users", httpx.Wrap(uh.Register))
	mux.Handle("POST /sessions", httpx.Wrap(uh.Login))
	mux.Handle("GET /users/current", uh.Authenticate(httpx.Wrap(uh.Current)))

	handler := httpx.CORS(httpx.Recover(otelhttp.NewHandler(mux, "http.server")))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		log.Printf("food-service listening on %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
