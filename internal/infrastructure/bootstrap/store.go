package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

// Stores holds the durable store chosen at startup and the in-memory fallback.
// Primary is the fallback itself when no durable backend is reachable.
type Stores struct {
	Primary  persistence.RecordStore
	Fallback *repository.MemoryRecordStore

	closers []func() error
}

// Degraded reports whether purchases go straight to the in-memory store
func (s *Stores) Degraded() bool {
	return s.Primary == persistence.RecordStore(s.Fallback)
}

// Close releases the durable backend, if any
func (s *Stores) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenStores connects the configured backend. A backend that cannot be
// reached is logged and replaced by the in-memory store; only a broken
// configuration is returned as an error.
func OpenStores(
	ctx context.Context,
	cfg *config.Config,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) (*Stores, error) {
	fallback := repository.NewMemoryRecordStore()
	stores := &Stores{Primary: fallback, Fallback: fallback}

	var (
		primary persistence.RecordStore
		closeFn func() error
		err     error
	)
	switch cfg.Store.Backend {
	case config.BackendMemory, "":
		logger.Info("Using in-memory record store", nil)
		return stores, nil
	case config.BackendPostgres:
		primary, closeFn, err = openPostgres(ctx, cfg, logger, timeProvider)
	case config.BackendDynamoDB:
		primary, err = openDynamo(ctx, cfg.Store.DynamoDB, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if err != nil {
		logger.Warn("Durable store unavailable, purchases will be kept in memory", map[string]any{
			"backend": cfg.Store.Backend,
			"error":   err.Error(),
		})
		return stores, nil
	}

	if pingErr := primary.Ping(ctx); pingErr != nil {
		logger.Warn("Durable store did not answer, purchases will be kept in memory", map[string]any{
			"backend": primary.Name(),
			"error":   pingErr.Error(),
		})
		if closeFn != nil {
			_ = closeFn()
		}
		return stores, nil
	}

	stores.Primary = primary
	if closeFn != nil {
		stores.closers = append(stores.closers, closeFn)
	}
	logger.Info("Durable record store ready", map[string]any{
		"backend": primary.Name(),
	})
	return stores, nil
}

func openPostgres(
	ctx context.Context,
	cfg *config.Config,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) (persistence.RecordStore, func() error, error) {
	dbConfig, err := database.NewConfig(cfg.Database, cfg.Logger.Level)
	if err != nil {
		return nil, nil, err
	}

	manager := database.NewManager(dbConfig, logger, timeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, nil, err
	}
	if err := manager.Migrate(ctx); err != nil {
		_ = manager.Close()
		return nil, nil, err
	}

	store := repository.NewPostgresRecordStore(manager.DB(), timeProvider, manager.QueryTimeout(), logger)
	return store, manager.Close, nil
}

func openDynamo(ctx context.Context, cfg config.DynamoDBConfig, logger coreport.Logger) (persistence.RecordStore, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return repository.NewDynamoRecordStore(client, cfg.Table, cfg.TransactionIndex, logger)
}

// LoadAWSConfig resolves credentials the usual way; region overrides the environment when set
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}
