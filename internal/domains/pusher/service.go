package pusher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

const (
	updatesBufferSize = 16
)

// Service listens for file events of a Pusher channel.
type Service struct {
	appKey  string
	cluster string
	channel string
	host    string

	activityTimeout time.Duration
	pongWait        time.Duration

	connected *atomic.Bool
	updates   chan int

	// current connection
	conn   *websocket.Conn
	cancel context.CancelFunc
	wg     *conc.WaitGroup
	mx     sync.Mutex

	writeMx sync.Mutex
}

func NewService(appKey, cluster, channel, host string) *Service {
	return &Service{
		appKey:  appKey,
		cluster: cluster,
		channel: channel,
		host:    host,

		activityTimeout: constants.PusherActivityTimeout,
		pongWait:        constants.PusherPongWait,

		connected: new(atomic.Bool),
		updates:   make(chan int, updatesBufferSize),
	}
}

func (s *Service) IsConnected() bool {
	return s.connected.Load()
}

// Updates returns numbers of boxes changed remotely.
func (s *Service) Updates() <-chan int {
	return s.updates
}

// Connect dials Pusher and waits for connection_established. Previous connection is dropped.
func (s *Service) Connect(ctx context.Context) (err error) {
	if lo.IsEmpty(s.appKey) {
		return fmt.Errorf("Connect: %w", errs.ErrPusherNotConfigured)
	}

	s.Disconnect()

	connectCtx, cancelConnect := context.WithTimeout(ctx, constants.PusherConnectTimeout)
	defer cancelConnect()

	wsURL := BuildURL(s.appKey, s.cluster, s.host)
	conn, response, err := websocket.DefaultDialer.DialContext(connectCtx, wsURL, nil)
	if response != nil && response.Body != nil {
		defer response.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("Connect: %w: %w", errs.ErrPusherConnect, err)
	}

	var (
		runCtx, cancel = context.WithCancel(context.Background())
		established    = make(chan error, 1)
		wg             = conc.NewWaitGroup()
	)
	s.mx.Lock()
	s.conn = conn
	s.cancel = cancel
	s.wg = wg
	s.mx.Unlock()

	wg.Go(func() {
		s.readLoop(runCtx, conn, established)
	})
	wg.Go(func() {
		s.pingLoop(runCtx, conn)
	})

	select {
	case err = <-established:
		if err != nil {
			s.Disconnect()
			return fmt.Errorf("Connect: %w: %w", errs.ErrPusherConnect, err)
		}
	case <-connectCtx.Done():
		s.Disconnect()
		return fmt.Errorf("Connect: %w: %w", errs.ErrPusherConnect, connectCtx.Err())
	}

	log.Info().
		Str("channel", s.channel).
		Msg("Connect: pusher connected")
	return nil
}

// Disconnect closes current connection and waits for its goroutines.
func (s *Service) Disconnect() {
	s.mx.Lock()
	conn, cancel, wg := s.conn, s.cancel, s.wg
	s.conn, s.cancel, s.wg = nil, nil, nil
	s.mx.Unlock()

	if conn == nil {
		return
	}

	cancel()

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	s.writeMx.Lock()
	if err := conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(constants.PusherWriteWait)); err != nil {
		log.Debug().Err(err).Msg("Disconnect: close frame not sent")
	}
	s.writeMx.Unlock()

	if err := conn.Close(); err != nil {
		log.Debug().Err(err).Msg("Disconnect")
	}

	wg.Wait()
	s.connected.Store(false)
}

func (s *Service) readLoop(ctx context.Context, conn *websocket.Conn, established chan<- error) {
	defer s.connected.Store(false)

	var isEstablished bool
	notify := func(err error) {
		if !isEstablished {
			isEstablished = true
			established <- err
		}
	}

	for {
		if err := conn.SetReadDeadline(time.Now().Add(s.activityTimeout + s.pongWait)); err != nil {
			log.Error().Err(err).Msg("readLoop: set read deadline error")
		}

		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			notify(err)
			if ctx.Err() == nil {
				log.Warn().
					Err(err).
					Msg("readLoop: pusher connection lost")
			}
			return
		}

		log.Trace().
			Str("event", msg.Event).
			Str("channel", msg.Channel).
			Msg("readLoop: got pusher message")

		switch msg.Event {
		case constants.PusherEventConnectionEstablished:
			var data connectionEstablishedData
			if err := decodeData(msg.Data, &data); err != nil {
				log.Warn().Err(err).Msg("readLoop: bad connection data")
			}

			if err := s.write(conn, outMessage{
				Event: constants.PusherEventSubscribe,
				Data:  subscribeData{Channel: s.channel},
			}); err != nil {
				notify(err)
				return
			}

			s.connected.Store(true)
			notify(nil)

		case constants.PusherEventError:
			var data errorData
			if err := decodeData(msg.Data, &data); err != nil {
				log.Warn().Err(err).Msg("readLoop: bad error data")
			}

			s.connected.Store(false)
			notify(fmt.Errorf("pusher error %d: %s", data.Code, data.Message))
			log.Error().
				Int("code", data.Code).
				Str("message", data.Message).
				Msg("readLoop: pusher error")

		case constants.PusherEventPing:
			if err := s.write(conn, outMessage{Event: constants.PusherEventPong, Data: struct{}{}}); err != nil {
				log.Error().Err(err).Msg("readLoop: pong failed")
			}

		case constants.PusherEventSubscriptionSucceeded:
			log.Info().
				Str("channel", msg.Channel).
				Msg("readLoop: subscribed")

		case constants.PusherEventFileUploaded, constants.PusherEventFileDeleted:
			if msg.Channel != s.channel {
				continue
			}

			number, err := parseBoxNumber(msg.Data)
			if err != nil {
				log.Warn().
					Err(err).
					Str("event", msg.Event).
					Msg("readLoop: bad file event")
				continue
			}

			log.Info().
				Str("event", msg.Event).
				Int("box", number).
				Msg("readLoop: box updated")

			select {
			case s.updates <- number:
			case <-ctx.Done():
				return
			}
		}
	}
}

// pingLoop keeps connection alive when channel is quiet.
func (s *Service) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(s.activityTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.write(conn, outMessage{Event: constants.PusherEventPing, Data: struct{}{}}); err != nil {
				log.Warn().Err(err).Msg("pingLoop: ping failed")
			}
		}
	}
}

func (s *Service) write(conn *websocket.Conn, msg outMessage) (err error) {
	s.writeMx.Lock()
	defer s.writeMx.Unlock()

	if err = conn.SetWriteDeadline(time.Now().Add(constants.PusherWriteWait)); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err = conn.WriteJSON(msg); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}

		return fmt.Errorf("write: %w", err)
	}

	return nil
}
