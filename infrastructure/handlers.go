package infrastructure

import (
	"sync"

	"github.com/htmlpg/pvfll-portal/internal/domains/controller"
	"github.com/htmlpg/pvfll-portal/internal/domains/debug"
	"github.com/htmlpg/pvfll-portal/internal/domains/portal"
)

var (
	portalHandler     *portal.Handler
	portalHandlerOnce sync.Once
)

func (k *Kernel) InjectPortalHandler() *portal.Handler {
	portalHandlerOnce.Do(func() {
		portalHandler = portal.NewHandler(
			k.InjectNetworkService(),
			k.InjectMQService(),
		)
	})

	return portalHandler
}

var (
	controllerMQHandler     *controller.MQHandler
	controllerMQHandlerOnce sync.Once
)

func (k *Kernel) InjectControllerMQHandler() *controller.MQHandler {
	controllerMQHandlerOnce.Do(func() {
		controllerMQHandler = controller.NewMQHandler(
			k.InjectControllerService(),
		)
	})

	return controllerMQHandler
}

var (
	debugMQHandler     *debug.MQHandler
	debugMQHandlerOnce sync.Once
)

func (k *Kernel) InjectDebugMQHandler() *debug.MQHandler {
	debugMQHandlerOnce.Do(func() {
		debugMQHandler = debug.NewMQHandler()
	})

	return debugMQHandler
}
