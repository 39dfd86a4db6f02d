package infrastructure

import (
	"fmt"

	"github.com/htmlpg/pvfll-portal/internal/domains/controller"
	"github.com/htmlpg/pvfll-portal/internal/domains/debug"
	"github.com/htmlpg/pvfll-portal/internal/domains/portal"
	"github.com/htmlpg/pvfll-portal/internal/environment"
	"github.com/htmlpg/pvfll-portal/internal/storage"
)

type IInjector interface {
	InjectPortalHandler() *portal.Handler

	// MQ handlers.

	InjectControllerMQHandler() *controller.MQHandler
	InjectDebugMQHandler() *debug.MQHandler
}

type Kernel struct {
	env  environment.Environment
	name string

	Store *storage.Store
}

// Inject builds the kernel of the named binary.
func Inject(env environment.Environment, name string) (k *Kernel, err error) {
	if name == "" {
		return k, fmt.Errorf("Inject: binary name is not set")
	}

	return &Kernel{
		env:  env,
		name: name,
	}, nil
}

// OpenStore opens the badger store at the configured path. Only binaries keeping state call it.
func (k *Kernel) OpenStore() (err error) {
	if k.Store, err = storage.Open(k.env.Agent.DBPath); err != nil {
		return fmt.Errorf("OpenStore: %w", err)
	}

	return nil
}

func (k *Kernel) Env() environment.Environment {
	return k.env
}
