package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Client publishes portfolio lifecycle events. The server runs without a
// publisher when no broker is configured, so callers must tolerate a nil
// Client.
type Client interface {
	Publish(subject string, data interface{}) error
	Close()
}

// NATSClient is the production Client backed by a NATS connection.
type NATSClient struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATSClient(url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSClient{conn: nc, logger: logger}, nil
}

func (c *NATSClient) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.conn.Publish(subject, payload)
}

func (c *NATSClient) Close() {
	c.conn.Close()
}
