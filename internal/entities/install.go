package entities

import (
	"time"
)

type InstallStep string

const (
	StepPackages       InstallStep = "packages"
	StepAPProfile      InstallStep = "ap_profile"
	StepDNSHijack      InstallStep = "dns_hijack"
	StepUnits          InstallStep = "units"
	StepStartInterface InstallStep = "start_interface"
	StepReadiness      InstallStep = "readiness"
	StepStartDnsmasq   InstallStep = "start_dnsmasq"
	StepStartWeb       InstallStep = "start_web"
)

func (s InstallStep) String() string {
	return string(s)
}

// InstallReport is the outcome of a provisioning run.
type InstallReport struct {
	Variant        string              `json:"variant"`
	StartedAt      time.Time           `json:"startedAt"`
	FinishedAt     time.Time           `json:"finishedAt"`
	CompletedSteps []string            `json:"completedSteps"`
	StepDurations  map[string]Duration `json:"stepDurations"`
	ExecFinished   bool                `json:"execFinished"`
	Error          string              `json:"error"`
	ErrorStep      string              `json:"errorStep"`
}

func NewInstallReport(variant string, startedAt time.Time) InstallReport {
	return InstallReport{
		Variant:        variant,
		StartedAt:      startedAt,
		CompletedSteps: make([]string, 0),
		StepDurations:  make(map[string]Duration),
	}
}

func (r InstallReport) Succeeded() bool {
	return r.ExecFinished && r.Error == ""
}

// Duration is a time.Duration that encodes as a string in JSON.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// Check is a single operational verification result.
type Check struct {
	Name     string
	Expected string
	Actual   string
	Passed   bool
}

type Checks []Check

func (c Checks) AllPassed() bool {
	for _, check := range c {
		if !check.Passed {
			return false
		}
	}

	return true
}
