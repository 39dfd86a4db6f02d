package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/infrastructure"
	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/portal"
	"github.com/htmlpg/pvfll-portal/internal/environment"
	"github.com/htmlpg/pvfll-portal/internal/logging"
)

const (
	serviceName     = "portal-web"
	shutdownTimeout = 5 * time.Second
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(constants.DefaultWebLogPath, constants.DefaultInterfaceDBPath); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := logging.SetupDaemon(env.Agent.LogfilePath, env.Agent.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	defer logWriter.Close()

	log.Info().
		Str("version", serviceVersion).
		Str("listen", env.Portal.ListenAddr).
		Str("iface", env.Device.WifiIface).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env, serviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	mqService := kernel.InjectMQService()
	if err = mqService.Connect(); err != nil {
		log.Error().Err(err).Msg("main: message bus connection failed, events disabled")
	}

	server := portal.NewServer(kernel.InjectPortalHandler())
	go func() {
		if err := server.Start(env.Portal.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("main: server error")
			cancelFunc()
		}
	}()

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("main: server shutdown error")
	}

	if err = mqService.Close(); err != nil {
		log.Error().Err(err).Msg("main: close MQ error")
	}
	log.Info().Msg("main: app gracefully stopped")
}
