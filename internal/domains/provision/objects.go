package provision

import (
	"context"
	"time"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

// Options control a provisioning run.
type Options struct {
	Variant           string
	SkipPackages      bool
	ReadinessTimeout  time.Duration
	ReadinessInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Variant == "" {
		o.Variant = constants.VariantNMShared
	}

	if o.ReadinessTimeout <= 0 {
		o.ReadinessTimeout = constants.DefaultReadinessTimeout
	}

	if o.ReadinessInterval <= 0 {
		o.ReadinessInterval = constants.DefaultReadinessInterval
	}

	return o
}

type step struct {
	name entities.InstallStep
	run  func(ctx context.Context) error
}

// APProfileFor returns access point profile for dns variant. NetworkManager
// runs its own dnsmasq in shared mode, standalone dnsmasq needs manual addressing.
func APProfileFor(variant, iface string) entities.APProfile {
	ipMethod := entities.IPMethodShared
	if variant == constants.VariantDnsmasq {
		ipMethod = entities.IPMethodManual
	}

	return entities.APProfile{
		Name:     constants.APConnectionName,
		Iface:    iface,
		SSID:     constants.APSSID,
		PSK:      constants.APPSK,
		Address:  constants.APAddress,
		Prefix:   constants.APPrefix,
		Mode:     entities.WifiModeAP,
		Band:     constants.APBand,
		IPMethod: ipMethod,
	}
}
