package infra

import (
	"context"
	"log"

	"github.com/vuciv/imessage-wrapped/config"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// ConnectToNATS establishes the optional report-handoff connection and the
// JetStream KV bucket finished reports are archived into. The caller owns the
// connection and must close it after publishing.
func ConnectToNATS(ctx context.Context, cfg *config.Config) (*nats.Conn, jetstream.KeyValue, error) {

	log.Printf("Attempting to connect to NATS at: %s", cfg.NatsURL)

	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: cfg.Nats.Bucket})
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	log.Printf("Successfully connected to NATS at: %s", cfg.NatsURL)

	return nc, kv, nil
}
