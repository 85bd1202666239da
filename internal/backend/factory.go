package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/adapters"
	"fintrack/internal/amqp"
	"fintrack/internal/ledger/memory"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(_ context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDSN)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	service := services.NewTransactionService(repo, f.eventPublisher(config))
	adapter := adapters.NewStoreAdapter(repo, service)

	f.logger.Info("Initialized SQLite backend",
		"dsn", config.SQLiteDSN,
		"amqp_enabled", config.AMQPURL != "")

	return &Result{
		Backend: adapter,
		Cleanup: service.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*Result, error) {
	store := memory.New()
	service := services.NewTransactionService(store, f.eventPublisher(config))
	adapter := adapters.NewStoreAdapter(store, service)

	f.logger.Info("Initialized memory backend",
		"amqp_enabled", config.AMQPURL != "")

	return &Result{
		Backend: adapter,
		Cleanup: service.Close,
	}, nil
}

// eventPublisher connects to AMQP when configured. A broker that cannot be
// reached downgrades to no event stream rather than failing startup.
func (f *DefaultFactory) eventPublisher(config Config) services.EventPublisher {
	if config.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		return nil
	}
	f.logger.Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)
	return client
}
