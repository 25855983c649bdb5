package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:    "req-42",
		OrderID:      "0b9c6f3e-8a51-4f7e-9d8e-2c8f1b7a9e01",
		CompanyEmail: "buyer@greenco.example",
		Type:         "order_created",
		Status:       "Pending",
		DeviceIDs:    []string{"d1", "d2"},
		Total:        "830.00",
		OccurredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "2025-06-01T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, event.OrderID, received.Message.Attributes["order_id"])
	assert.Equal(t, "order_created", received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, event.DeviceIDs, decoded.DeviceIDs)
	assert.Equal(t, "830.00", decoded.Total)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishOrderEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 502")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())

	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewProviderPublisher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{"local without endpoint", config.PubSubConfig{Provider: "local"}, "local endpoint is required"},
		{"google without project", config.PubSubConfig{Provider: "google", TopicID: "orders"}, "project ID is required"},
		{"google without topic", config.PubSubConfig{Provider: "google", ProjectID: "p"}, "topic ID is required"},
		{"amqp without url", config.PubSubConfig{Provider: "amqp"}, "amqp url is required"},
		{"unknown provider", config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			publisher, err := newProviderPublisher(context.Background(), &cfg, newDiscardLogger())

			require.Error(t, err)
			assert.Nil(t, publisher)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewProviderPublisher_Local(t *testing.T) {
	cfg := &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://127.0.0.1:9/push"}

	publisher, err := newProviderPublisher(context.Background(), cfg, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "orders.order_completed", routingKey(&service.OrderEvent{Type: "order_completed"}))
}

func TestEncodeEvent(t *testing.T) {
	_, err := encodeEvent(nil)
	require.Error(t, err)

	event := newTestEvent()
	encoded, err := encodeEvent(event)
	require.NoError(t, err)
	assert.Equal(t, event.OccurredAt, encoded.occurredAt)
	assert.Equal(t, "req-42", encoded.attributes["request_id"])

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(encoded.body, &decoded))
	assert.Equal(t, event.CompanyEmail, decoded.CompanyEmail)

	event.OccurredAt = time.Time{}
	event.RequestID = ""
	encoded, err = encodeEvent(event)
	require.NoError(t, err)
	assert.False(t, encoded.occurredAt.IsZero())
	assert.NotContains(t, encoded.attributes, "request_id")
}
