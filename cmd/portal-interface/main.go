package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/htmlpg/pvfll-portal/infrastructure"
	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/environment"
	"github.com/htmlpg/pvfll-portal/internal/logging"
)

const (
	serviceName = "portal-interface"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(constants.DefaultInterfaceLogPath, constants.DefaultInterfaceDBPath); err != nil {
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
		Str("device id", env.Device.ID).
		Dur("qr interval", env.Device.QRInterval).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env, serviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	if err = kernel.OpenStore(); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	// blocks until the signal, display cleanup runs inside
	kernel.InjectControllerService().Run(cancelCtx)

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(kernel *infrastructure.Kernel) (err error) {
	// message bus is optional, the controller also polls WiFi state
	log.Info().Msg("initServices: connecting to message bus...")
	mqService := kernel.InjectMQService()
	mqService.RegisterHandlers(getMQRoutes(kernel))
	if err = mqService.Connect(); err != nil {
		log.Error().Err(err).Msg("initServices: message bus connection failed")
	}

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.Store.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}
