package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TomyMarengo/Woki-Challenge/internal/config"
	"github.com/TomyMarengo/Woki-Challenge/internal/conflict"
	"github.com/TomyMarengo/Woki-Challenge/internal/seed"
	"github.com/TomyMarengo/Woki-Challenge/internal/store"
	"github.com/TomyMarengo/Woki-Challenge/pkg/logger"
	"github.com/TomyMarengo/Woki-Challenge/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reservation timeline engine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем стартовые данные
	initial := seed.Default()
	if cfg.Seed.GenerateCount > 0 {
		tableIDs := make([]string, 0, len(initial.Tables))
		for _, t := range initial.Tables {
			tableIDs = append(tableIDs, t.ID)
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		generated, err := seed.Generate(rng, tableIDs, cfg.Seed.GenerateCount, initial.Date)
		if err != nil {
			log.Fatal("Failed to generate test data: %v", err)
		}
		initial.Reservations = generated
		log.Info("Generated %d synthetic reservations", len(generated))
	}

	// Инициализируем хранилище (явный контейнер, передается по ссылке)
	var storeMetrics store.Metrics
	if metricsCollector != nil {
		storeMetrics = metricsCollector
	}
	timeline := store.New(initial, storeMetrics)

	log.Info("Store initialized: date=%s, sectors=%d, tables=%d, reservations=%d",
		timeline.View().CurrentDate, len(timeline.Sectors()), len(timeline.Tables()),
		len(timeline.Reservations()))

	// Сводка advisory-конфликтов в стартовом наборе
	reportSeedConflicts(timeline, log, metricsCollector)

	// Если метрики выключены - движок готов, процессу нечего держать
	if !cfg.Metrics.Enabled {
		log.Info("Metrics disabled, nothing to serve; engine ready")
		return
	}

	// Ops-роутер: только /metrics и /health, транспорта бронирований нет
	r := mux.NewRouter()
	r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Metrics.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Serving metrics on %s%s", addr, cfg.Metrics.Path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Metrics server failed: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server forced to shutdown: %v", err)
	}

	log.Info("Stopped gracefully")
}

// reportSeedConflicts логирует advisory-конфликты стартового набора: движок
// их не блокирует, но персонал должен их видеть
func reportSeedConflicts(timeline *store.Store, log *logger.Logger, m *metrics.Metrics) {
	reservations := timeline.Reservations()
	flagged := 0

	for _, res := range reservations {
		placement := conflict.CheckPlacement(res.TableID, res.StartTime, res.EndTime, reservations, res.ID)
		capacityIssue := false
		if table := timeline.TableByID(res.TableID); table != nil {
			capacityIssue = conflict.CheckCapacity(res.PartySize, table).HasConflict
		}

		if placement.HasConflict {
			log.Warn("Seed conflict: reservation=%s reason=%s conflicts_with=%v",
				res.ID, placement.Reason, placement.ConflictingReservationIDs)
			if m != nil {
				m.IncConflict(string(placement.Reason))
			}
			flagged++
		}
		if capacityIssue {
			log.Warn("Seed conflict: reservation=%s party=%d does not fit table=%s",
				res.ID, res.PartySize, res.TableID)
			if m != nil {
				m.IncConflict("capacity_exceeded")
			}
			flagged++
		}
	}

	if flagged == 0 {
		log.Info("Seed data has no advisory conflicts")
	} else {
		log.Warn("Seed data has %d advisory conflicts", flagged)
	}
}
