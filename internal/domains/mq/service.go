package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	reconnectWait = 2 * time.Second
	drainTimeout  = 5 * time.Second
)

var ErrDisabled = errors.New("message bus is disabled")

type Handler func(m *nats.Msg) (resp any)

// Service is a thin NATS wrapper. With empty url every operation is a no-op.
type Service struct {
	url  string
	name string

	conn     *nats.Conn
	handlers map[string]Handler
	subs     []*nats.Subscription
	mx       sync.Mutex
}

func NewService(url, name string) *Service {
	return &Service{
		url:      url,
		name:     name,
		handlers: make(map[string]Handler),
	}
}

func (s *Service) IsEnabled() bool {
	return lo.IsNotEmpty(s.url)
}

// RegisterHandlers adds subject handlers, subscribed on Connect.
func (s *Service) RegisterHandlers(routes map[string]Handler) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for subject, handler := range routes {
		s.handlers[subject] = handler
	}
}

func (s *Service) Connect() (err error) {
	if !s.IsEnabled() {
		log.Info().Msg("Connect: message bus disabled")
		return nil
	}

	conn, err := nats.Connect(s.url,
		nats.Name(s.name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Connect: message bus disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("Connect: message bus reconnected")
		}),
	)
	if err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	s.conn = conn
	for subject, handler := range s.handlers {
		sub, err := conn.Subscribe(subject, s.handle(subject, handler))
		if err != nil {
			return fmt.Errorf("Connect: subscribe %s: %w", subject, err)
		}

		s.subs = append(s.subs, sub)
	}

	log.Info().
		Str("url", s.url).
		Strs("subjects", lo.Keys(s.handlers)).
		Msg("Connect: message bus connected")
	return nil
}

func (s *Service) handle(subject string, handler Handler) nats.MsgHandler {
	return func(m *nats.Msg) {
		resp := handler(m)
		if lo.IsEmpty(m.Reply) || resp == nil {
			return
		}

		data, err := encodeReply(resp)
		if err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("handle: encode reply error")
			return
		}

		if err = m.Respond(data); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("handle: respond error")
		}
	}
}

// Publish sends body as JSON. Disabled bus drops the message.
func (s *Service) Publish(subject string, body any) (err error) {
	conn := s.connection()
	if conn == nil {
		log.Debug().Str("subject", subject).Msg("Publish: message bus disabled, skip")
		return nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	if err = conn.Publish(subject, data); err != nil {
		return fmt.Errorf("Publish: %w", err)
	}

	return nil
}

// Request sends body as JSON and decodes the reply into resp.
func (s *Service) Request(ctx context.Context, subject string, body, resp any) (err error) {
	conn := s.connection()
	if conn == nil {
		return fmt.Errorf("Request: %w", ErrDisabled)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("Request: %w", err)
	}

	msg, err := conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("Request: %w", err)
	}

	if err = json.Unmarshal(msg.Data, resp); err != nil {
		return fmt.Errorf("Request: %w", err)
	}

	return nil
}

func (s *Service) Close() (err error) {
	s.mx.Lock()
	conn := s.conn
	s.conn, s.subs = nil, nil
	s.mx.Unlock()

	if conn == nil {
		return nil
	}

	if err = conn.FlushTimeout(drainTimeout); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		log.Warn().Err(err).Msg("Close: flush error")
	}
	conn.Close()

	return nil
}

func (s *Service) connection() *nats.Conn {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.conn
}

func encodeReply(resp any) ([]byte, error) {
	if raw, ok := resp.([]byte); ok {
		return raw, nil
	}

	return json.Marshal(resp)
}
