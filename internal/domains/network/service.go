package network

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/errs"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
	"github.com/htmlpg/pvfll-portal/pkg/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) error
		ExecOutput(ctx context.Context, command shell.ICommand) ([]byte, error)
	}
)

const (
	profileFields = "connection.id,connection.interface-name,802-11-wireless.ssid,802-11-wireless.mode," +
		"802-11-wireless.band,ipv4.method,ipv4.addresses"
)

// Service manages wifi connections through NetworkManager.
type Service struct {
	shellService IShellService
	iface        string
}

func NewService(shellService IShellService, iface string) *Service {
	return &Service{
		shellService: shellService,
		iface:        iface,
	}
}

func (s *Service) Iface() string {
	return s.iface
}

// RecreateAPProfile deletes access point profile (if it exists) and adds it again.
func (s *Service) RecreateAPProfile(ctx context.Context, profile entities.APProfile) (err error) {
	ctx, cancel := withNmcliTimeout(ctx)
	defer cancel()

	if err = s.shellService.Exec(ctx, commands.NewNmcliCmd("connection", "delete", profile.Name)); err != nil {
		log.Debug().
			Err(err).
			Str("name", profile.Name).
			Msg("RecreateAPProfile: profile not deleted")
	}

	if err = s.shellService.Exec(ctx, commands.NewNmcliCmd(
		"connection", "add",
		"type", "wifi",
		"ifname", profile.Iface,
		"con-name", profile.Name,
		"autoconnect", "no",
		"ssid", profile.SSID,
		"802-11-wireless.mode", profile.Mode,
		"802-11-wireless.band", profile.Band,
		"ipv4.method", profile.IPMethod,
		"ipv4.addresses", profile.CIDR(),
		"wifi-sec.key-mgmt", "wpa-psk",
		"wifi-sec.psk", profile.PSK,
	).WithSecret(profile.PSK)); err != nil {
		return fmt.Errorf("RecreateAPProfile: %w", err)
	}

	log.Info().
		Str("name", profile.Name).
		Str("ssid", profile.SSID).
		Str("address", profile.CIDR()).
		Msg("RecreateAPProfile: profile created")
	return nil
}

// ActivateAP brings connection profile up.
func (s *Service) ActivateAP(ctx context.Context, name string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, constants.WifiConnectTimeout)
	defer cancel()

	if err = s.shellService.Exec(ctx, commands.NewNmcliCmd("connection", "up", name)); err != nil {
		return fmt.Errorf("ActivateAP: %w", err)
	}

	return nil
}

// GetAPProfile reads stored connection profile.
func (s *Service) GetAPProfile(ctx context.Context, name string) (profile entities.APProfile, err error) {
	ctx, cancel := withNmcliTimeout(ctx)
	defer cancel()

	output, err := s.shellService.ExecOutput(ctx, commands.NewNmcliTerseCmd(profileFields, "connection", "show", name))
	if err != nil {
		if _, ok := shell.ExitCode(err); ok {
			return profile, fmt.Errorf("GetAPProfile: %w: %w", errs.ErrProfileNotFound, err)
		}

		return profile, fmt.Errorf("GetAPProfile: %w", err)
	}

	values := parseKeyValues(output)
	profile = entities.APProfile{
		Name:     values["connection.id"],
		Iface:    values["connection.interface-name"],
		SSID:     values["802-11-wireless.ssid"],
		Mode:     values["802-11-wireless.mode"],
		Band:     values["802-11-wireless.band"],
		IPMethod: values["ipv4.method"],
	}

	// first address only
	cidr, _, _ := strings.Cut(values["ipv4.addresses"], ",")
	address, rawPrefix, found := strings.Cut(strings.TrimSpace(cidr), "/")
	if !found {
		return profile, fmt.Errorf("GetAPProfile: %w: ipv4.addresses %q", errs.ErrInvalidProfile, cidr)
	}

	if profile.Prefix, err = strconv.Atoi(rawPrefix); err != nil {
		return profile, fmt.Errorf("GetAPProfile: %w: %w", errs.ErrInvalidProfile, err)
	}
	profile.Address = address

	return profile, nil
}

// CurrentConnection returns name of the active wifi client connection on the interface.
// The portal access point runs on the same interface and is not a client connection.
func (s *Service) CurrentConnection(ctx context.Context) (name string, ok bool) {
	ctx, cancel := withNmcliTimeout(ctx)
	defer cancel()

	output, err := s.shellService.ExecOutput(ctx, commands.NewNmcliTerseCmd("NAME,DEVICE,TYPE", "connection", "show", "--active"))
	if err != nil {
		log.Warn().
			Err(err).
			Msg("CurrentConnection")
		return "", false
	}

	for _, fields := range terseLines(output) {
		if len(fields) < 3 || fields[0] == constants.APConnectionName {
			continue
		}

		if fields[1] == s.iface && fields[2] == constants.WifiConnType {
			return fields[0], true
		}
	}

	return "", false
}

// IsWifiConnected reports whether any wifi connection is active on the interface.
func (s *Service) IsWifiConnected(ctx context.Context) bool {
	_, ok := s.CurrentConnection(ctx)
	return ok
}

// IPAddress returns first IPv4 address of the interface without prefix.
func (s *Service) IPAddress(ctx context.Context) (address string, ok bool) {
	ctx, cancel := withNmcliTimeout(ctx)
	defer cancel()

	output, err := s.shellService.ExecOutput(ctx, commands.NewNmcliTerseCmd("IP4.ADDRESS", "device", "show", s.iface))
	if err != nil {
		log.Warn().
			Err(err).
			Msg("IPAddress")
		return "", false
	}

	for _, fields := range terseLines(output) {
		if len(fields) >= 2 && strings.HasPrefix(fields[0], "IP4.ADDRESS") {
			address = stripPrefix(strings.Join(fields[1:], ":"))
			return address, lo.IsNotEmpty(address)
		}
	}

	return "", false
}

// ScanNetworks returns visible networks sorted by signal, strongest first.
func (s *Service) ScanNetworks(ctx context.Context) (networks entities.WifiNetworks, err error) {
	// scan may fail when the radio is busy
	rescanCtx, cancelRescan := withNmcliTimeout(ctx)
	err = s.shellService.Exec(rescanCtx, commands.NewNmcliCmd("device", "wifi", "rescan", "ifname", s.iface))
	cancelRescan()
	if err != nil {
		log.Debug().
			Err(err).
			Msg("ScanNetworks: rescan failed")
	}

	listCtx, cancelList := withNmcliTimeout(ctx)
	defer cancelList()

	output, err := s.shellService.ExecOutput(listCtx, commands.NewNmcliTerseCmd("SSID,SIGNAL,SECURITY", "device", "wifi", "list", "ifname", s.iface))
	if err != nil {
		return networks, fmt.Errorf("ScanNetworks: %w", err)
	}

	networks = make(entities.WifiNetworks, 0)
	for _, fields := range terseLines(output) {
		if len(fields) < 3 {
			continue
		}

		networks = append(networks, entities.WifiNetwork{
			SSID:     strings.TrimSpace(fields[0]),
			Signal:   parseSignal(fields[1]),
			Security: strings.TrimSpace(fields[2]),
		})
	}

	networks = lo.Filter(networks, func(network entities.WifiNetwork, _ int) bool {
		return lo.IsNotEmpty(network.SSID)
	})
	networks = lo.UniqBy(networks, func(network entities.WifiNetwork) string {
		return network.SSID
	})
	slices.SortStableFunc(networks, func(a, b entities.WifiNetwork) int {
		return cmp.Compare(b.Signal, a.Signal)
	})

	return networks, nil
}

// Connect joins wifi network. Password is omitted for open networks.
func (s *Service) Connect(ctx context.Context, ssid, password string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, constants.WifiConnectTimeout)
	defer cancel()

	args := []string{"device", "wifi", "connect", ssid, "ifname", s.iface}
	if lo.IsNotEmpty(password) {
		args = append(args, "password", password)
	}

	if err = s.shellService.Exec(ctx, commands.NewNmcliCmd(args...).WithSecret(password)); err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	log.Info().
		Str("ssid", ssid).
		Msg("Connect: wifi connected")
	return nil
}

// DeviceState returns NetworkManager general state of the interface.
func (s *Service) DeviceState(ctx context.Context) (state entities.DeviceState, err error) {
	ctx, cancel := withNmcliTimeout(ctx)
	defer cancel()

	output, err := s.shellService.ExecOutput(ctx, commands.NewNmcliTerseCmd("GENERAL.STATE", "device", "show", s.iface))
	if err != nil {
		return state, fmt.Errorf("DeviceState: %w", err)
	}

	value, ok := parseKeyValues(output)["GENERAL.STATE"]
	if !ok {
		return state, fmt.Errorf("DeviceState: GENERAL.STATE not found in %q", strings.TrimSpace(string(output)))
	}

	code, text, ok := parseDeviceState(value)
	if !ok {
		return state, fmt.Errorf("DeviceState: unexpected state %q", value)
	}

	return entities.DeviceState{
		Code: code,
		Text: text,
	}, nil
}

func withNmcliTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, constants.NmcliTimeout)
}
