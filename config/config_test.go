package config

import (
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TAKEAWAY_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("TAKEAWAY_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("TAKEAWAY_TEST_MISSING", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 10},
		{name: "valid", value: "25", want: 25},
		{name: "invalid", value: "many", want: 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", testCase.value)
			assert.Equal(t, testCase.want, GetEnvInt("DB_MAX_OPEN_CONNS", 10))
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "eleme")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "eleme_db")

	assert.Equal(t, "host=db port=5433 user=eleme password=secret dbname=eleme_db sslmode=disable", PostgresDSN())
}

func TestKafkaClientsDisabledWithoutBroker(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "")
	assert.Nil(t, NewKafkaWriter("orders"))
	assert.Nil(t, NewKafkaReader("orders", "stats-svc"))
}

func TestNewKafkaWriter(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("KAFKA_ORDERS_TOPIC", "")

	writer := NewKafkaWriter(OrdersTopic())
	require.NotNil(t, writer)
	assert.Equal(t, "orders", writer.Topic)
	assert.Equal(t, "kafka:9092", writer.Addr.String())
	assert.IsType(t, &kafka.Hash{}, writer.Balancer)
}

func TestCloseAll(t *testing.T) {
	first := &fakeCloser{}
	second := &fakeCloser{err: errors.New("redis closed")}
	third := &fakeCloser{err: errors.New("kafka closed")}

	err := CloseAll(first, nil, second, third)

	require.Error(t, err)
	assert.True(t, first.closed)
	assert.True(t, second.closed)
	assert.True(t, third.closed)
	assert.Contains(t, err.Error(), "redis closed")
	assert.Contains(t, err.Error(), "kafka closed")

	assert.NoError(t, CloseAll(&fakeCloser{}))
}

func TestInitLoggerAddsServiceField(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	InitLogger("order-svc")
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	entry := logrus.NewEntry(logrus.StandardLogger())
	require.NoError(t, serviceHook{service: "order-svc"}.Fire(entry))
	assert.Equal(t, "order-svc", entry.Data["service"])
}
