package messaging

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

// Publisher emits post lifecycle events over NATS. A Publisher built without
// a broker is disabled and drops every event.
type Publisher struct {
	nc *nats.Conn
}

// Connect establishes a NATS connection. An empty url disables publishing
// instead of failing startup.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		log.Println("NATS disabled, post events will not be published.")
		return &Publisher{}, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("✅ Connected to NATS.")
	return &Publisher{nc: nc}, nil
}

// Publish sends the JSON-encoded payload to the given subject.
func (p *Publisher) Publish(subject string, payload interface{}) error {
	// Ensure NATS is connected before publishing
	if p.nc == nil || !p.nc.IsConnected() {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

// Close closes the NATS connection gracefully.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
