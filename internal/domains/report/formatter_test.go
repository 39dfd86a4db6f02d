package report_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/report"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

func TestFormatInstallReport(t *testing.T) {
	t.Parallel()

	startedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	installReport := entities.NewInstallReport("dnsmasq", startedAt)
	installReport.CompletedSteps = []string{"packages", "ap_profile"}
	installReport.StepDurations["packages"] = entities.Duration(12 * time.Second)
	installReport.StepDurations["ap_profile"] = entities.Duration(300 * time.Millisecond)
	installReport.ErrorStep = "dns_hijack"
	installReport.Error = "permission denied"
	installReport.FinishedAt = startedAt.Add(13 * time.Second)

	output := report.FormatInstallReport(installReport)
	assert.Contains(t, output, "packages")
	assert.Contains(t, output, "12s")
	assert.Contains(t, output, "300ms")
	assert.Contains(t, output, "dns_hijack")
	assert.Contains(t, output, "FAILED")
	assert.Contains(t, output, "DNSMASQ")
	assert.Contains(t, output, "error: permission denied")
}

func TestFormatChecks(t *testing.T) {
	t.Parallel()

	output := report.FormatChecks(entities.Checks{
		{Name: "ap ssid", Expected: "pvfll_002", Actual: "pvfll_002", Passed: true},
		{Name: "portal-web.service active", Expected: "active", Actual: "failed"},
	})
	assert.Contains(t, output, "ap ssid")
	assert.Contains(t, output, "pvfll_002")
	assert.Contains(t, output, "portal-web.service active")
	assert.Contains(t, output, "FAILED")
}

func TestFormatNetworks(t *testing.T) {
	t.Parallel()

	output := report.FormatNetworks(entities.WifiNetworks{
		{SSID: "Home", Signal: 80, Security: "WPA2"},
		{SSID: "Cafe", Signal: 40},
	})
	assert.Contains(t, output, "Home")
	assert.Contains(t, output, "80%")
	assert.Contains(t, output, "open")
}

func TestFormatLeases(t *testing.T) {
	t.Parallel()

	input := "1746093600 aa:bb:cc:dd:ee:01 192.168.4.23 phone 01:aa:bb:cc:dd:ee:01\n" +
		"0 aa:bb:cc:dd:ee:02 192.168.4.45 * *\n" +
		"1746093600 aa:bb:cc:dd:ee:03 10.42.0.7 laptop *\n" +
		"broken line\n"

	output, err := report.FormatLeases(input, lo.ToPtr("192.168.4.1/24"))
	require.NoError(t, err)
	assert.Contains(t, output, "aa:bb:cc:dd:ee:01")
	assert.Contains(t, output, "2025-05-01T10:00:00Z")
	assert.Contains(t, output, "never")
	assert.NotContains(t, output, "laptop")

	output, err = report.FormatLeases(input, nil)
	require.NoError(t, err)
	assert.Contains(t, output, "laptop")
}

func TestFormatLeases_InvalidFilter(t *testing.T) {
	t.Parallel()

	input := "0 aa:bb:cc:dd:ee:02 192.168.4.45 phone *\n"

	output, err := report.FormatLeases(input, lo.ToPtr("192.168.4.0/33"))
	require.Error(t, err)
	assert.Empty(t, output)
}

func TestFormatInterfaceState(t *testing.T) {
	t.Parallel()

	output := report.FormatInterfaceState(entities.InterfaceState{
		State:           entities.AppStateActive,
		PusherConnected: true,
		QRURL:           "https://htmlpg.example/?t=abc",
		Boxes: entities.Boxes{
			1: {Number: 1, Name: "page.html", Type: "Text (HTML)", Size: 2048},
			2: {Number: 2, Empty: true},
			3: {Number: 3, Error: "timeout"},
		},
	})

	assert.Contains(t, output, "active")
	assert.Contains(t, output, "connected")
	assert.Contains(t, output, "https://htmlpg.example/?t=abc")
	assert.Contains(t, output, "page.html")
	assert.Contains(t, output, "(empty)")
	assert.Contains(t, output, "timeout")
}
