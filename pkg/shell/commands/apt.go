package commands

const (
	aptGetExecutable = "apt-get"
	aptFrontendEnv   = "DEBIAN_FRONTEND=noninteractive"
)

func NewAptUpdateCmd() *CustomCmd {
	return NewCmd(aptGetExecutable, "update").WithEnv(aptFrontendEnv)
}

func NewAptInstallCmd(packages ...string) *CustomCmd {
	args := append([]string{"install", "-y", "--no-install-recommends"}, packages...)
	return NewCmd(aptGetExecutable, args...).WithEnv(aptFrontendEnv)
}
