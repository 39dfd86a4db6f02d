package commands

const (
	systemctlExecutable = "systemctl"
)

func NewSystemctlCmd(action string, units ...string) *CustomCmd {
	return NewCmd(systemctlExecutable, append([]string{action}, units...)...)
}

func NewDaemonReloadCmd() *CustomCmd {
	return NewSystemctlCmd("daemon-reload")
}
