package database

import (
	"context"
	"fmt"
	"time"

	"ridehail/pkg/logger"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *DatabaseConfig
}

type DatabaseConfig struct {
	URI            string
	Database       string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	ConnectRetries int
	RetryBackoff   time.Duration
}

// Connect dials MongoDB and pings the primary, retrying with a doubling
// backoff up to ConnectRetries times.
func Connect(ctx context.Context, config *DatabaseConfig, log *logger.Logger) (*MongoDB, error) {
	attempts := config.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}
	backoff := config.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := NewMongoDB(ctx, config, log)
		if err == nil {
			log.WithFields(map[string]interface{}{
				"database": config.Database,
				"attempt":  attempt,
			}).Info("Connected to MongoDB")
			return db, nil
		}
		lastErr = err

		log.WithError(err).WithField("attempt", attempt).Warn("MongoDB connection attempt failed")
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", attempts, lastErr)
}

func NewMongoDB(ctx context.Context, config *DatabaseConfig, log *logger.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(uint64(config.MaxPoolSize)).
		SetMinPoolSize(uint64(config.MinPoolSize)).
		SetSocketTimeout(config.SocketTimeout).
		SetConnectTimeout(config.ConnectTimeout).
		SetServerMonitor(serverMonitor(log))

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(config.Database),
		Config:   config,
	}, nil
}

func serverMonitor(log *logger.Logger) *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			log.WithError(e.Failure).WithFields(map[string]interface{}{
				"connection_id": e.ConnectionID,
				"duration_ms":   e.Duration.Milliseconds(),
			}).Warn("MongoDB heartbeat failed")
		},
		ServerClosed: func(e *event.ServerClosedEvent) {
			log.WithField("address", string(e.Address)).Info("MongoDB server connection closed")
		},
	}
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}
