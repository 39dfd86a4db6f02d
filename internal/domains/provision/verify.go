package provision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/htmlpg/pvfll-portal/internal/domains/units"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

const (
	hijackPresent  = "present"
	hijackMissing  = "missing"
	hijackModified = "modified"
)

// Verify inspects the provisioned system. Failed checks are reported in the
// result, err is returned only when checks cannot be built.
func (s *Service) Verify(ctx context.Context, variant string) (checks entities.Checks, err error) {
	if err = ValidateVariant(variant); err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}

	checks = append(checks, s.verifyProfile(ctx, variant)...)

	hijackCheck, err := s.verifyHijack(variant)
	if err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}
	checks = append(checks, hijackCheck)

	for _, unit := range units.ForVariant(variant) {
		enabled, enabledState := s.systemdService.IsEnabled(ctx, unit)
		active, activeState := s.systemdService.IsActive(ctx, unit)
		checks = append(checks,
			entities.Check{Name: unit + " enabled", Expected: "enabled", Actual: enabledState, Passed: enabled},
			entities.Check{Name: unit + " active", Expected: "active", Actual: activeState, Passed: active},
		)
	}

	return checks, nil
}

func (s *Service) verifyProfile(ctx context.Context, variant string) entities.Checks {
	expected := APProfileFor(variant, s.iface)

	profile, err := s.networkService.GetAPProfile(ctx, expected.Name)
	if err != nil {
		return entities.Checks{{
			Name:     "ap profile",
			Expected: expected.Name,
			Actual:   err.Error(),
		}}
	}

	return entities.Checks{
		newCheck("ap ssid", expected.SSID, profile.SSID),
		newCheck("ap address", expected.CIDR(), profile.CIDR()),
		newCheck("ap mode", expected.Mode, profile.Mode),
		newCheck("ap ipv4 method", expected.IPMethod, profile.IPMethod),
		newCheck("ap prefix", strconv.Itoa(expected.Prefix), strconv.Itoa(profile.Prefix)),
	}
}

func (s *Service) verifyHijack(variant string) (check entities.Check, err error) {
	path, err := s.hijackService.Path(variant)
	if err != nil {
		return check, fmt.Errorf("verifyHijack: %w", err)
	}

	expected, err := s.hijackService.Render(variant)
	if err != nil {
		return check, fmt.Errorf("verifyHijack: %w", err)
	}

	check = entities.Check{
		Name:     "dns hijack " + path,
		Expected: hijackPresent,
	}

	content, readErr := os.ReadFile(path)
	switch {
	case errors.Is(readErr, fs.ErrNotExist):
		check.Actual = hijackMissing
	case readErr != nil:
		check.Actual = readErr.Error()
	case !bytes.Equal(content, expected):
		check.Actual = hijackModified
	default:
		check.Actual = hijackPresent
		check.Passed = true
	}

	return check, nil
}

func newCheck(name, expected, actual string) entities.Check {
	return entities.Check{
		Name:     name,
		Expected: expected,
		Actual:   actual,
		Passed:   expected == actual,
	}
}
