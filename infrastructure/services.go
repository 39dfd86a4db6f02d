package infrastructure

import (
	"sync"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/domains/boxes"
	"github.com/htmlpg/pvfll-portal/internal/domains/boxes/httpclient"
	"github.com/htmlpg/pvfll-portal/internal/domains/controller"
	"github.com/htmlpg/pvfll-portal/internal/domains/display"
	"github.com/htmlpg/pvfll-portal/internal/domains/dnshijack"
	"github.com/htmlpg/pvfll-portal/internal/domains/health"
	"github.com/htmlpg/pvfll-portal/internal/domains/mq"
	"github.com/htmlpg/pvfll-portal/internal/domains/network"
	"github.com/htmlpg/pvfll-portal/internal/domains/packages"
	"github.com/htmlpg/pvfll-portal/internal/domains/provision"
	"github.com/htmlpg/pvfll-portal/internal/domains/pusher"
	"github.com/htmlpg/pvfll-portal/internal/domains/qrtoken"
	"github.com/htmlpg/pvfll-portal/internal/domains/readiness"
	"github.com/htmlpg/pvfll-portal/internal/domains/systemd"
	"github.com/htmlpg/pvfll-portal/internal/domains/units"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
)

var (
	shellService     *shell.Service
	shellServiceOnce sync.Once
)

func (k *Kernel) InjectShellService() *shell.Service {
	shellServiceOnce.Do(func() {
		shellService = shell.NewService()
	})

	return shellService
}

var (
	networkService     *network.Service
	networkServiceOnce sync.Once
)

func (k *Kernel) InjectNetworkService() *network.Service {
	networkServiceOnce.Do(func() {
		networkService = network.NewService(
			k.InjectShellService(),
			k.env.Device.WifiIface,
		)
	})

	return networkService
}

var (
	systemdService     *systemd.Service
	systemdServiceOnce sync.Once
)

func (k *Kernel) InjectSystemdService() *systemd.Service {
	systemdServiceOnce.Do(func() {
		systemdService = systemd.NewService(
			k.InjectShellService(),
		)
	})

	return systemdService
}

var (
	packageService     *packages.Service
	packageServiceOnce sync.Once
)

func (k *Kernel) InjectPackageService() *packages.Service {
	packageServiceOnce.Do(func() {
		packageService = packages.NewService(
			k.InjectShellService(),
		)
	})

	return packageService
}

var (
	hijackService     *dnshijack.Service
	hijackServiceOnce sync.Once
)

func (k *Kernel) InjectHijackService() *dnshijack.Service {
	hijackServiceOnce.Do(func() {
		hijackService = dnshijack.NewService(
			constants.NMSharedDnsmasqConfPath,
			constants.DnsmasqConfPath,
			k.env.Device.WifiIface,
		)
	})

	return hijackService
}

var (
	unitService     *units.Service
	unitServiceOnce sync.Once
)

func (k *Kernel) InjectUnitService() *units.Service {
	unitServiceOnce.Do(func() {
		unitService = units.NewService(
			constants.SystemdUnitDir,
		)
	})

	return unitService
}

var (
	readinessService     *readiness.Service
	readinessServiceOnce sync.Once
)

func (k *Kernel) InjectReadinessService() *readiness.Service {
	readinessServiceOnce.Do(func() {
		readinessService = readiness.NewService(
			k.InjectNetworkService(),
		)
	})

	return readinessService
}

var (
	provisionService     *provision.Service
	provisionServiceOnce sync.Once
)

// InjectProvisionService requires an open store.
func (k *Kernel) InjectProvisionService() *provision.Service {
	provisionServiceOnce.Do(func() {
		provisionService = provision.NewService(
			k.InjectPackageService(),
			k.InjectNetworkService(),
			k.InjectHijackService(),
			k.InjectUnitService(),
			k.InjectSystemdService(),
			k.InjectReadinessService(),
			k.Store,
			k.env.Device.WifiIface,
		)
	})

	return provisionService
}

var (
	boxHTTPClientService     *httpclient.Service
	boxHTTPClientServiceOnce sync.Once
)

func (k *Kernel) InjectBoxHTTPClientService() *httpclient.Service {
	boxHTTPClientServiceOnce.Do(func() {
		boxHTTPClientService = httpclient.NewService(
			k.env.Device.APIBase,
			k.env.Device.HTTPTimeout,
		)
	})

	return boxHTTPClientService
}

var (
	boxService     *boxes.Service
	boxServiceOnce sync.Once
)

func (k *Kernel) InjectBoxService() *boxes.Service {
	boxServiceOnce.Do(func() {
		boxService = boxes.NewService(
			k.InjectBoxHTTPClientService(),
			constants.BoxCount,
		)
	})

	return boxService
}

var (
	healthService     *health.Service
	healthServiceOnce sync.Once
)

func (k *Kernel) InjectHealthService() *health.Service {
	healthServiceOnce.Do(func() {
		healthService = health.NewService(
			k.env.Device.APIBase,
			k.env.Device.ID,
			k.env.Device.HTTPTimeout,
		)
	})

	return healthService
}

var (
	qrService     *qrtoken.Service
	qrServiceOnce sync.Once
)

func (k *Kernel) InjectQRService() *qrtoken.Service {
	qrServiceOnce.Do(func() {
		qrService = qrtoken.NewService(
			k.env.Device.QRSecret,
			k.env.Device.ID,
			k.env.Device.QRInterval,
			k.env.Device.QRBaseURL,
		)
	})

	return qrService
}

var (
	pusherService     *pusher.Service
	pusherServiceOnce sync.Once
)

func (k *Kernel) InjectPusherService() *pusher.Service {
	pusherServiceOnce.Do(func() {
		pusherService = pusher.NewService(
			k.env.Pusher.AppKey,
			k.env.Pusher.Cluster,
			k.env.Pusher.Channel,
			k.env.Pusher.Host,
		)
	})

	return pusherService
}

var (
	displayService     *display.Preview
	displayServiceOnce sync.Once
)

func (k *Kernel) InjectDisplay() *display.Preview {
	displayServiceOnce.Do(func() {
		displayService = display.NewPreview(
			k.env.Agent.PreviewPath,
		)
	})

	return displayService
}

var (
	controllerService     *controller.Service
	controllerServiceOnce sync.Once
)

// InjectControllerService requires an open store.
func (k *Kernel) InjectControllerService() *controller.Service {
	controllerServiceOnce.Do(func() {
		controllerService = controller.NewService(
			k.InjectDisplay(),
			k.InjectNetworkService(),
			k.InjectPusherService(),
			k.InjectBoxService(),
			k.InjectQRService(),
			k.InjectHealthService(),
			k.Store,
			controller.DefaultOptions(),
		)
	})

	return controllerService
}

var (
	mqService     *mq.Service
	mqServiceOnce sync.Once
)

func (k *Kernel) InjectMQService() *mq.Service {
	mqServiceOnce.Do(func() {
		mqService = mq.NewService(
			k.env.Portal.NATSURL,
			k.name,
		)
	})

	return mqService
}
