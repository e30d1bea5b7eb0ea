package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pberardi-dev/slotwise/libs/config"
	"github.com/pberardi-dev/slotwise/libs/db"
	"github.com/pberardi-dev/slotwise/libs/httpx"
	"github.com/pberardi-dev/slotwise/libs/kafkax"
	otelx "github.com/pberardi-dev/slotwise/libs/otel"
	"github.com/pberardi-dev/slotwise/libs/runtime"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/consumer"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/handlers"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/inbox"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/outbox"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/policy"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/scheduling"
	"github.com/pberardi-dev/slotwise/services/booking-service/internal/storage"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func parseReminderOffsets(raw string, logger *slog.Logger) []time.Duration {
	var offsets []time.Duration
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mins, err := strconv.Atoi(part)
		if err != nil || mins <= 0 {
			logger.Warn("invalid reminder offset", "value", part)
			continue
		}
		offsets = append(offsets, time.Duration(mins)*time.Minute)
	}
	if len(offsets) == 0 {
		offsets = []time.Duration{24 * time.Hour}
	}
	return offsets
}

// decodeHoursEvent parses a business.hours.updated.v1 payload into a cache
// row. Weekday is 0=Sunday, matching the business-service emitter.
func decodeHoursEvent(data []byte) (storage.CachedDayHours, error) {
	var payload struct {
		BusinessID  string `json:"business_id"`
		Weekday     int    `json:"weekday"`
		IsOpen      bool   `json:"is_open"`
		OpenMinute  int    `json:"open_minute"`
		CloseMinute int    `json:"close_minute"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return storage.CachedDayHours{}, err
	}
	if payload.BusinessID == "" {
		return storage.CachedDayHours{}, errors.New("business_id missing")
	}
	if payload.Weekday < 0 || payload.Weekday > 6 {
		return storage.CachedDayHours{}, errors.New("weekday out of range")
	}
	if payload.IsOpen && payload.CloseMinute <= payload.OpenMinute {
		return storage.CachedDayHours{}, errors.New("open window is empty")
	}
	return storage.CachedDayHours{
		BusinessID:  payload.BusinessID,
		Weekday:     payload.Weekday,
		IsOpen:      payload.IsOpen,
		OpenMinute:  payload.OpenMinute,
		CloseMinute: payload.CloseMinute,
	}, nil
}

// decodeServiceEvent parses a business.service.updated.v1 payload.
func decodeServiceEvent(data []byte) (businessID, serviceID string, durationMinutes int, err error) {
	var payload struct {
		BusinessID      string `json:"business_id"`
		ServiceID       string `json:"service_id"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", "", 0, err
	}
	if payload.BusinessID == "" || payload.ServiceID == "" {
		return "", "", 0, errors.New("business_id or service_id missing")
	}
	if payload.DurationMinutes <= 0 {
		return "", "", 0, errors.New("duration_minutes must be positive")
	}
	return payload.BusinessID, payload.ServiceID, payload.DurationMinutes, nil
}

func main() {
	service := config.String("SERVICE_NAME", "booking-service")
	port, err := config.Port("PORT", "8083")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := storage.NewBookingRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	offsets := parseReminderOffsets(config.String("REMINDER_OFFSETS_MINUTES", "1440,60"), logger)
	policyProvider, err := policy.NewBusinessPolicyProvider(logger, offsets, config.String("BUSINESS_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("policy provider init failed", "err", err)
		policyProvider = policy.NewStaticProvider(offsets)
	}
	schedulingProvider, err := scheduling.NewProvider(config.String("BUSINESS_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("scheduling provider init failed; using fallback", "err", err)
		schedulingProvider = nil
	}
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	inboxRepo := inbox.NewRepository(pool)
	startConsumer := func(topic string, handle consumer.Handler) {
		if strings.TrimSpace(topic) == "" {
			return
		}
		consumerCfg := consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "booking-service"),
			Topic:   topic,
		}
		eventConsumer := consumer.New(logger, inboxRepo, consumerCfg, handle)
		go eventConsumer.Run(ctx)
	}

	applyEntitlements := func(ctx context.Context, msg kafka.Message) error {
		// Both subscription events carry the same limit fields; booking
		// enforces using this local cache.
		var payload struct {
			BusinessID             string `json:"business_id"`
			Tier                   string `json:"tier"`
			MaxMonthlyAppointments int    `json:"max_monthly_appointments"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}
		if payload.BusinessID == "" || payload.Tier == "" || payload.MaxMonthlyAppointments <= 0 {
			logger.Error("missing required event fields", "topic", msg.Topic)
			return nil
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := repo.UpsertBusinessEntitlements(ctx, tx, storage.BusinessEntitlements{
			BusinessID:             payload.BusinessID,
			Tier:                   payload.Tier,
			MaxMonthlyAppointments: payload.MaxMonthlyAppointments,
		}); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	applyHoursUpdate := func(ctx context.Context, msg kafka.Message) error {
		row, err := decodeHoursEvent(msg.Value)
		if err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := repo.UpsertCachedHours(ctx, tx, row); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	applyServiceUpdate := func(ctx context.Context, msg kafka.Message) error {
		businessID, serviceID, duration, err := decodeServiceEvent(msg.Value)
		if err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := repo.UpsertCachedServiceDuration(ctx, tx, businessID, serviceID, duration); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	startConsumer(config.String("KAFKA_CONSUME_TOPIC", "billing.subscription.activated.v1"), applyEntitlements)
	startConsumer(config.String("KAFKA_CONSUME_TOPIC_2", "billing.subscription.canceled.v1"), applyEntitlements)
	startConsumer(config.String("KAFKA_HOURS_TOPIC", "business.hours.updated.v1"), applyHoursUpdate)
	startConsumer(config.String("KAFKA_SERVICES_TOPIC", "business.service.updated.v1"), applyServiceUpdate)
	bookingHandler := handlers.NewBookingHandler(repo, outboxRepo, logger, policyProvider, schedulingProvider, offsets)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	setupEntitlementsRoutes(ctx, mux, logger)
	mux.HandleFunc("/api/v1/public/slots", bookingHandler.Slots)
	mux.HandleFunc("/api/v1/public/book", bookingHandler.Create)
	mux.HandleFunc("/api/v1/appointments", bookingHandler.List)
	mux.HandleFunc("/api/v1/appointments/confirm", bookingHandler.Confirm)
	mux.HandleFunc("/api/v1/appointments/cancel", bookingHandler.Cancel)
	mux.HandleFunc("/api/v1/appointments/complete", bookingHandler.Complete)
	mux.HandleFunc("/api/v1/appointments/reschedule", bookingHandler.Reschedule)
	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "booking")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
