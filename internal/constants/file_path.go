package constants

const (
	SystemdUnitDir          = "/etc/systemd/system"
	DnsmasqConfPath         = "/etc/dnsmasq.d/portal.conf"
	NMSharedDnsmasqConfPath = "/etc/NetworkManager/dnsmasq-shared.d/portal.conf"
)

const (
	PortalEnvPath = "/etc/pvfll/portal.env"
	LocalEnvPath  = ".env.local"
	PortalWorkDir = "/opt/pvfll"
	InterfaceBin  = "/usr/local/bin/portal-interface"
	WebBin        = "/usr/local/bin/portal-web"
	DnsmasqBin    = "/usr/sbin/dnsmasq"
	DnsmasqLeases = "/var/lib/misc/dnsmasq.leases"
)

const (
	DefaultInterfaceLogPath = "/var/log/pvfll/portal_interface.log"
	DefaultWebLogPath       = "/var/log/pvfll/portal_web.log"
	DefaultInterfaceDBPath  = "/var/lib/pvfll/cache"
	DefaultInstallDBPath    = "/var/lib/pvfll/install"
	DefaultPreviewPath      = "preview.png"
)
