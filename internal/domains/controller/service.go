package controller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
)

type (
	IDisplay interface {
		Init() error
		ShowMessage(message string, size int) error
		ShowPortal(ssid, psk, address string) error
		ShowBoxes(boxes entities.Boxes, qrURL string, forceFull bool) error
		Clear() error
		Sleep() error
	}

	INetworkService interface {
		IsWifiConnected(ctx context.Context) bool
		ActivateAP(ctx context.Context, name string) error
	}

	IPusherService interface {
		Connect(ctx context.Context) error
		Disconnect()
		IsConnected() bool
		Updates() <-chan int
	}

	IBoxService interface {
		FetchAll(ctx context.Context) entities.Boxes
		FetchBoxStatus(ctx context.Context, number int) entities.Box
	}

	IQRService interface {
		URL(t time.Time) string
		Slot(t time.Time) int64
		UntilNextSlot(t time.Time) time.Duration
	}

	IHealthService interface {
		Report(ctx context.Context, connected bool) error
	}

	ISnapshotStore interface {
		SaveBoxSnapshot(boxes entities.Boxes) error
		LoadBoxSnapshot() (entities.Boxes, bool, error)
	}
)

// Service drives the display device. All mutable state is owned by the Run goroutine,
// readers get an immutable copy through State.
type Service struct {
	display        IDisplay
	networkService INetworkService
	pusherService  IPusherService
	boxService     IBoxService
	qrService      IQRService
	healthService  IHealthService
	snapshotStore  ISnapshotStore
	opts           Options
	now            func() time.Time

	wifiSignal chan struct{}
	published  atomic.Pointer[entities.InterfaceState]

	// owned by Run
	state  entities.AppState
	boxes  entities.Boxes
	qrURL  string
	qrSlot int64
}

func NewService(display IDisplay, networkService INetworkService, pusherService IPusherService,
	boxService IBoxService, qrService IQRService, healthService IHealthService,
	snapshotStore ISnapshotStore, opts Options) *Service {
	s := &Service{
		display:        display,
		networkService: networkService,
		pusherService:  pusherService,
		boxService:     boxService,
		qrService:      qrService,
		healthService:  healthService,
		snapshotStore:  snapshotStore,
		opts:           opts,
		now:            time.Now,

		wifiSignal: make(chan struct{}, 1),

		state: entities.AppStateBoot,
		boxes: make(entities.Boxes),
	}
	s.publish()

	return s
}

// State returns the last published controller state.
func (s *Service) State() entities.InterfaceState {
	state := *s.published.Load()
	state.PusherConnected = s.pusherService.IsConnected()

	return state
}

// NotifyWifiConnected wakes up the WiFi waiter. It never blocks.
func (s *Service) NotifyWifiConnected() {
	select {
	case s.wifiSignal <- struct{}{}:
	default:
	}
}

// Run boots the device and serves updates until ctx is done. A failed boot halts the device.
func (s *Service) Run(ctx context.Context) {
	defer s.shutdown()

	if err := s.boot(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}

		log.Error().
			Err(err).
			Msg("Run: boot failed, halted")
		s.setState(entities.AppStateHalted)
		<-ctx.Done()
		return
	}

	s.loop(ctx)
}

func (s *Service) boot(ctx context.Context) (err error) {
	if err = s.display.Init(); err != nil {
		log.Error().Err(err).Msg("boot: display init error")
	}
	s.showMessage(ctx, msgBooting, sizeBooting, true)

	s.showMessage(ctx, msgCheckingWifi, sizeStatus, false)
	if !s.networkService.IsWifiConnected(ctx) {
		s.setState(entities.AppStateWaitingWifi)
		log.Info().Msg("boot: no Wi-Fi, showing captive portal instructions")

		if err = s.display.ShowPortal(s.opts.APSSID, s.opts.APPSK, s.opts.APAddress); err != nil {
			log.Error().Err(err).Msg("boot: show portal error")
		}

		if err = s.networkService.ActivateAP(ctx, s.opts.APConnectionName); err != nil {
			log.Warn().Err(err).Msg("boot: access point activation error")
		}

		if err = s.waitWifi(ctx); err != nil {
			return fmt.Errorf("boot: %w", err)
		}

		log.Info().Msg("boot: Wi-Fi connected")
		s.showMessage(ctx, msgWifiConnected, sizeStatus, true)
	}

	s.setState(entities.AppStateConnecting)
	s.showMessage(ctx, msgConnectingWS, sizeConnect, false)
	if err = s.pusherService.Connect(ctx); err != nil {
		s.showMessage(ctx, msgWebsocketFailed, sizeStatus, false)
		return fmt.Errorf("boot: %w", err)
	}

	s.setState(entities.AppStateFetchingData)
	s.showMessage(ctx, msgFetchingData, sizeStatus, false)
	s.boxes = s.fetchWithFallback(ctx)
	s.publish()
	s.showMessage(ctx, msgBootComplete, sizeStatus, true)

	return nil
}

func (s *Service) waitWifi(ctx context.Context) (err error) {
	ticker := time.NewTicker(s.opts.WifiRetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waitWifi: %w", ctx.Err())
		case <-ticker.C:
		case <-s.wifiSignal:
			log.Info().Msg("waitWifi: portal reported a new connection")
		}

		if s.networkService.IsWifiConnected(ctx) {
			return nil
		}
	}
}

// fetchWithFallback fetches all boxes and falls back to the stored snapshot when every fetch failed.
func (s *Service) fetchWithFallback(ctx context.Context) entities.Boxes {
	boxes := s.boxService.FetchAll(ctx)
	if !boxes.AllFailed() {
		s.saveSnapshot(boxes)
		return boxes
	}

	cached, found, err := s.snapshotStore.LoadBoxSnapshot()
	if err != nil {
		log.Error().Err(err).Msg("fetchWithFallback: load snapshot error")
		return boxes
	}

	if !found {
		log.Warn().Msg("fetchWithFallback: all boxes failed, no snapshot stored")
		return boxes
	}

	log.Warn().Msg("fetchWithFallback: all boxes failed, using stored snapshot")
	return cached
}

func (s *Service) loop(ctx context.Context) {
	now := s.now()
	s.qrURL = s.qrService.URL(now)
	s.qrSlot = s.qrService.Slot(now)
	log.Info().
		Str("url", s.qrURL).
		Msg("loop: initial QR URL")

	s.setState(entities.AppStateActive)
	s.render(true)

	var (
		qrTimer      = time.NewTimer(s.qrService.UntilNextSlot(now))
		connTicker   = time.NewTicker(s.opts.ConnectionCheckInterval)
		syncTicker   = time.NewTicker(s.opts.SyncPollInterval)
		healthTicker = time.NewTicker(s.opts.HealthReportInterval)
		updates      = s.pusherService.Updates()
	)
	defer func() {
		qrTimer.Stop()
		connTicker.Stop()
		syncTicker.Stop()
		healthTicker.Stop()
	}()

	log.Info().Msg("loop: system ready")
	for {
		select {
		case <-ctx.Done():
			return

		case <-qrTimer.C:
			s.rotateQR()
			qrTimer.Reset(s.qrService.UntilNextSlot(s.now()))

		case number := <-updates:
			s.updateBox(ctx, number)

		case <-connTicker.C:
			if s.pusherService.IsConnected() {
				continue
			}

			log.Warn().Msg("loop: connection lost, reconnecting...")
			if err := s.pusherService.Connect(ctx); err != nil {
				log.Error().Err(err).Msg("loop: reconnect failed")
			}
			s.syncPoll(ctx)
			syncTicker.Reset(s.opts.SyncPollInterval)

		case <-syncTicker.C:
			s.syncPoll(ctx)

		case <-healthTicker.C:
			s.reportHealth(ctx)
		}
	}
}

func (s *Service) rotateQR() {
	now := s.now()
	slot := s.qrService.Slot(now)
	if slot == s.qrSlot {
		return
	}

	s.qrSlot = slot
	s.qrURL = s.qrService.URL(now)
	s.publish()
	log.Info().
		Str("url", s.qrURL).
		Msg("rotateQR: QR rotated")

	s.render(false)
}

func (s *Service) updateBox(ctx context.Context, number int) {
	if number < 1 || number > constants.BoxCount {
		log.Warn().
			Int("box", number).
			Msg("updateBox: unknown box, skip")
		return
	}

	s.boxes[number] = s.boxService.FetchBoxStatus(ctx, number)
	s.publish()
	s.saveSnapshot(s.boxes)

	log.Info().
		Int("box", number).
		Msg("updateBox: refreshing display")
	s.render(false)
}

func (s *Service) syncPoll(ctx context.Context) {
	log.Info().Msg("syncPoll: fetching all boxes...")
	fresh := s.boxService.FetchAll(ctx)
	if fresh.Equal(s.boxes) {
		log.Debug().Msg("syncPoll: no changes")
		return
	}

	log.Info().Msg("syncPoll: data changed, refreshing display")
	s.boxes = fresh
	s.publish()
	if !fresh.AllFailed() {
		s.saveSnapshot(fresh)
	}

	s.render(false)
}

func (s *Service) reportHealth(ctx context.Context) {
	if err := s.healthService.Report(ctx, s.pusherService.IsConnected()); err != nil {
		if errors.Is(err, errs.ErrAPINotConfigured) {
			log.Debug().Err(err).Msg("reportHealth: skip")
			return
		}

		log.Warn().Err(err).Msg("reportHealth: health report failed")
		return
	}

	log.Debug().Msg("reportHealth: health reported")
}

func (s *Service) render(forceFull bool) {
	if err := s.display.ShowBoxes(s.boxes.Clone(), s.qrURL, forceFull); err != nil {
		log.Error().Err(err).Msg("render: display update error")
	}
}

func (s *Service) saveSnapshot(boxes entities.Boxes) {
	if err := s.snapshotStore.SaveBoxSnapshot(boxes); err != nil {
		log.Warn().Err(err).Msg("saveSnapshot: snapshot not saved")
	}
}

// showMessage shows a boot message, holding it on screen when hold is set.
func (s *Service) showMessage(ctx context.Context, message string, size int, hold bool) {
	if err := s.display.ShowMessage(message, size); err != nil {
		log.Error().
			Err(err).
			Str("message", message).
			Msg("showMessage: display error")
	}

	if !hold || s.opts.MessageHold <= 0 {
		return
	}

	timer := time.NewTimer(s.opts.MessageHold)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Service) setState(state entities.AppState) {
	log.Info().
		Stringer("from", s.state).
		Stringer("to", state).
		Msg("setState: app state changed")

	s.state = state
	s.publish()
}

// publish stores an immutable copy of the current state for concurrent readers.
func (s *Service) publish() {
	s.published.Store(&entities.InterfaceState{
		State: s.state,
		QRURL: s.qrURL,
		Boxes: s.boxes.Clone(),
	})
}

func (s *Service) shutdown() {
	log.Info().Msg("shutdown: shutting down...")
	s.setState(entities.AppStateStopped)
	s.pusherService.Disconnect()

	if err := s.display.Clear(); err != nil {
		log.Error().Err(err).Msg("shutdown: clear display error")
	}

	if err := s.display.Sleep(); err != nil {
		log.Error().Err(err).Msg("shutdown: sleep display error")
	}
}
