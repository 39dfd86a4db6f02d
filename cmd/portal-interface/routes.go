package main

import (
	"github.com/htmlpg/pvfll-portal/infrastructure"
	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
)

func getMQRoutes(injector infrastructure.IInjector) map[string]mq.Handler {
	controllerMQHandler := injector.InjectControllerMQHandler()
	debugMQHandler := injector.InjectDebugMQHandler()

	return map[string]mq.Handler{
		constants.MQWifiConnected:  controllerMQHandler.WifiConnected,
		constants.MQInterfaceState: controllerMQHandler.GetState,
		constants.MQDebugDumpHeap:  debugMQHandler.DumpHeap,
		constants.MQDebugStats:     debugMQHandler.Stats,
	}
}
