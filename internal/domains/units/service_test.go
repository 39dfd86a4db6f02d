package units_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/units"
)

func TestForVariant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"portal-interface.service", "portal-web.service"}, units.ForVariant("nm-shared"))
	assert.Equal(t,
		[]string{"portal-interface.service", "portal-web.service", "portal-dnsmasq.service"},
		units.ForVariant("dnsmasq"),
	)
}

func TestService_Install(t *testing.T) {
	t.Parallel()

	unitDir := t.TempDir()
	service := units.NewService(unitDir)

	changed, err := service.Install(units.ForVariant("dnsmasq"))
	require.NoError(t, err)
	assert.Equal(t, []string{"portal-interface.service", "portal-web.service", "portal-dnsmasq.service"}, changed)

	content, err := os.ReadFile(filepath.Join(unitDir, "portal-interface.service"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "ExecStart=/usr/local/bin/portal-interface\n")
	assert.Contains(t, string(content), "EnvironmentFile=-/etc/pvfll/portal.env\n")

	content, err = os.ReadFile(filepath.Join(unitDir, "portal-web.service"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "ExecStart=/usr/local/bin/portal-web\n")
	assert.Contains(t, string(content), "After=portal-interface.service\n")

	content, err = os.ReadFile(filepath.Join(unitDir, "portal-dnsmasq.service"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "ExecStart=/usr/sbin/dnsmasq --keep-in-foreground --conf-file=/etc/dnsmasq.d/portal.conf\n")

	// idempotent second run
	changed, err = service.Install(units.ForVariant("dnsmasq"))
	require.NoError(t, err)
	assert.Empty(t, changed)

	// only modified unit reported
	require.NoError(t, os.WriteFile(filepath.Join(unitDir, "portal-web.service"), []byte("stale"), 0644))
	changed, err = service.Install(units.ForVariant("nm-shared"))
	require.NoError(t, err)
	assert.Equal(t, []string{"portal-web.service"}, changed)
}

func TestService_RenderUnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := units.NewService(t.TempDir()).Render("unknown.service")
	require.Error(t, err)
}
