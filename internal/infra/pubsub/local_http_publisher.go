package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"recyclemart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-events"
	localPushTimeout  = 30 * time.Second
)

// localHTTPPublisher posts order events to an HTTP endpoint in the Pub/Sub push format.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the body of a Pub/Sub push request.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher pushing to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

// PublishOrderEvent pushes one event and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(encoded.body)
	push.Message.Attributes = encoded.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = encoded.occurredAt.Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "failed to encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push order event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	logPublished(ctx, p.logger, "local", event, slog.String("message_id", push.Message.MessageID))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
