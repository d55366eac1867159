package config

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// LoadEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env file")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warnf("invalid integer %q, using %d", value, defaultValue)
		return defaultValue
	}
	return n
}

func PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		GetEnv("DB_NAME", "takeaway"),
	)
}

// MustInitPostgres opens the shared connection pool. The pool is the only
// backpressure: requests wait for a free connection without a deadline.
func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 10))
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

func OrdersTopic() string {
	return GetEnv("KAFKA_ORDERS_TOPIC", "orders")
}

// NewKafkaReader returns nil when no broker is configured.
func NewKafkaReader(topic, groupID string) *kafka.Reader {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured. Messages are
// partitioned by key hash.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// CloseAll closes every resource and reports all failures together.
func CloseAll(closers ...io.Closer) error {
	var result *multierror.Error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
