package report

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/entities"
)

const (
	statusOK      = "OK"
	statusFailed  = "FAILED"
	statusSkipped = "-"
)

// FormatInstallReport formats provisioning run as a table of steps.
func FormatInstallReport(report entities.InstallReport) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "STEP", "STATUS", "DURATION"})

	for i, step := range report.CompletedSteps {
		t.AppendRow(table.Row{i + 1, step, statusOK, time.Duration(report.StepDurations[step]).Round(time.Millisecond)})
	}

	if lo.IsNotEmpty(report.ErrorStep) {
		t.AppendRow(table.Row{len(report.CompletedSteps) + 1, report.ErrorStep, statusFailed, statusSkipped})
	}

	result := statusOK
	if !report.Succeeded() {
		result = statusFailed
	}
	t.AppendFooter(table.Row{"", report.Variant, result, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)})

	if lo.IsNotEmpty(report.Error) {
		t.SetCaption("error: %s", report.Error)
	}

	return t.Render()
}

// FormatChecks formats verification results.
func FormatChecks(checks entities.Checks) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "CHECK", "EXPECTED", "ACTUAL", "RESULT"})

	for i, check := range checks {
		result := statusOK
		if !check.Passed {
			result = statusFailed
		}

		t.AppendRow(table.Row{i + 1, check.Name, check.Expected, check.Actual, result})
	}

	return t.Render()
}

// FormatNetworks formats wifi scan results.
func FormatNetworks(networks entities.WifiNetworks) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "SSID", "SIGNAL", "SECURITY"})

	for i, network := range networks {
		security := network.Security
		if lo.IsEmpty(security) {
			security = "open"
		}

		t.AppendRow(table.Row{i + 1, network.SSID, fmt.Sprintf("%d%%", network.Signal), security})
	}

	return t.Render()
}

// FormatInterfaceState formats state reported by the interface daemon.
func FormatInterfaceState(state entities.InterfaceState) string {
	summary := table.NewWriter()
	summary.AppendRows([]table.Row{
		{"STATE", state.State},
		{"PUSHER", lo.Ternary(state.PusherConnected, "connected", "disconnected")},
		{"QR URL", lo.Ternary(lo.IsEmpty(state.QRURL), statusSkipped, state.QRURL)},
	})

	boxes := table.NewWriter()
	boxes.AppendHeader(table.Row{"BOX", "FILE", "TYPE", "SIZE", "ERROR"})
	for _, box := range state.Boxes {
		name := lo.Ternary(box.Empty, "(empty)", box.Name)
		boxes.AppendRow(table.Row{box.Number, name, box.Type, box.Size, box.Error})
	}

	return summary.Render() + "\n" + boxes.Render()
}
