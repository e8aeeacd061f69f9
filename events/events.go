package events

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/Sirupsen/logrus"
	"github.com/google/uuid"
	"github.com/nats-io/go-nats-streaming"
	"github.com/pkg/errors"
)

type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Created time.Time       `json:"created"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewEvent(eventType string, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errors.Wrapf(err, "json.Marshal %s payload", eventType)
	}
	return Event{
		ID:      uuid.New().String(),
		Type:    eventType,
		Created: time.Now().UTC(),
		Payload: data,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Conn is the subset of a NATS Streaming connection used here.
type Conn interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb stan.MsgHandler, opts ...stan.SubscriptionOption) (stan.Subscription, error)
	Close() error
}

type NatsPublisher struct {
	conn    Conn
	subject string
}

func Connect(url, clusterID, clientID string) (stan.Conn, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, errors.Wrapf(err, "stan.Connect %s", url)
	}
	log.Infof("Connected to %s clusterID: [%s] clientID: [%s]", url, clusterID, clientID)
	return sc, nil
}

func NewNatsPublisher(conn Conn, subject string) *NatsPublisher {
	return &NatsPublisher{conn: conn, subject: subject}
}

func (p *NatsPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "json.Marshal event")
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return errors.Wrapf(err, "Publish %s to %s", e.Type, p.subject)
	}
	return nil
}

func (p *NatsPublisher) Close() error {
	return p.conn.Close()
}

// NoopPublisher is used when no NATS server is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, e Event) error {
	log.Debugf("NoopPublisher: %s %s", e.Type, e.ID)
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

type Handler func(e Event)

// Listen subscribes handler to subject, replaying only new messages.
func Listen(conn Conn, subject string, handler Handler) (stan.Subscription, error) {
	sub, err := conn.Subscribe(subject, func(msg *stan.Msg) {
		HandleMessage(msg.Data, handler)
	}, stan.StartWithLastReceived())
	if err != nil {
		return nil, errors.Wrapf(err, "Subscribe %s", subject)
	}
	log.Infof("Listening on [%s]", subject)
	return sub, nil
}

func HandleMessage(data []byte, handler Handler) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		log.Errorf("events.HandleMessage json.Unmarshal: %s", err.Error())
		return
	}
	if e.Type == "" {
		log.Warnf("events.HandleMessage: event without type %s", e.ID)
		return
	}
	handler(e)
}
