package constants

const (
	APConnectionName = "portal-ap"
	APSSID           = "pvfll_002"
	APPSK            = "htmlpg2025"
	APAddress        = "192.168.4.1"
	APPrefix         = 24
	APBand           = "bg"
	PortalURL        = "http://" + APAddress
	PortalListenAddr = APAddress + ":80"
)

const (
	DHCPRangeStart = "192.168.4.10"
	DHCPRangeEnd   = "192.168.4.100"
	DHCPLeaseTime  = "12h"
)

const (
	VariantNMShared = "nm-shared"
	VariantDnsmasq  = "dnsmasq"
)
