package commands

const (
	nmcliExecutable = "nmcli"
)

func NewNmcliCmd(args ...string) *CustomCmd {
	return NewCmd(nmcliExecutable, args...)
}

// NewNmcliTerseCmd builds "nmcli -t -f <fields> <args...>".
func NewNmcliTerseCmd(fields string, args ...string) *CustomCmd {
	return NewCmd(nmcliExecutable, append([]string{"-t", "-f", fields}, args...)...)
}
