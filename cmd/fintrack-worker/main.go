package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"fintrack/internal/amqp"
	"fintrack/internal/config"
	applog "fintrack/internal/log"
)

// tally accumulates signed cents per category as records arrive.
type tally struct {
	mu      sync.Mutex
	balance int64
	byCat   map[string]int64
	count   int
}

func newTally() *tally {
	return &tally{byCat: make(map[string]int64)}
}

func (t *tally) record(msg *amqp.TransactionRecordedMessage) (balance int64, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cents := msg.SignedCents()
	t.balance += cents
	t.byCat[msg.Category] += cents
	t.count++
	return t.balance, t.count
}

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting fintrack-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerLog := applog.New(applog.Config{Level: slog.LevelInfo, Component: applog.ComponentWorker})
	totals := newTally()

	handler := func(msg *amqp.TransactionRecordedMessage) error {
		balance, count := totals.record(msg)
		workerLog.Info("Transaction recorded",
			applog.FieldTxID, msg.ID,
			"category", msg.Category,
			"type", msg.Type,
			"amount_cents", msg.AmountCents,
			"running_balance_cents", balance,
			"seen", count,
		)
		return nil
	}

	logger.Info("Consuming transaction events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	if err := client.ConsumeTransactionRecorded(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
