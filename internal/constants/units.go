package constants

const (
	UnitInterface = "portal-interface.service"
	UnitWeb       = "portal-web.service"
	UnitDnsmasq   = "portal-dnsmasq.service"
)
