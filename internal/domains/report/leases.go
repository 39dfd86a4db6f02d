package report

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	// dnsmasq lease line: <expiry> <mac> <ip> <hostname> <client-id>
	leaseFieldsMin  = 4
	unknownHostname = "*"
)

// FormatLeases formats dnsmasq lease file content. Leases outside filterCIDR are skipped.
func FormatLeases(input string, filterCIDR *string) (output string, err error) {
	var filterNet *net.IPNet
	if filterCIDR != nil {
		if _, filterNet, err = net.ParseCIDR(strings.TrimSpace(*filterCIDR)); err != nil {
			return output, fmt.Errorf("FormatLeases: %w", err)
		}
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "MAC", "IP", "HOSTNAME", "EXPIRES"})

	var (
		rowNumber = 1
		scanner   = bufio.NewScanner(strings.NewReader(input))
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if lo.IsEmpty(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < leaseFieldsMin {
			log.Warn().Str("line", line).Msg("FormatLeases: malformed lease")
			continue
		}

		skip, skipErr := skipLease(fields[2], filterNet)
		if skipErr != nil {
			log.Warn().Err(skipErr).Msg("FormatLeases: skip row")
			continue
		}

		if skip {
			continue
		}

		hostname := fields[3]
		if hostname == unknownHostname {
			hostname = ""
		}

		t.AppendRow(table.Row{rowNumber, fields[1], fields[2], hostname, formatExpiry(fields[0])})
		rowNumber++
	}

	if err = scanner.Err(); err != nil {
		return output, fmt.Errorf("FormatLeases: %w", err)
	}

	return t.Render(), nil
}

func formatExpiry(value string) string {
	expiry, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}

	if expiry == 0 {
		return "never"
	}

	return time.Unix(expiry, 0).UTC().Format(time.RFC3339)
}

func skipLease(ipValue string, filterNet *net.IPNet) (skip bool, err error) {
	if filterNet == nil {
		return false, nil
	}

	ip := net.ParseIP(strings.TrimSpace(ipValue))
	if ip.To4() == nil {
		return skip, fmt.Errorf("skipLease: invalid ip address %v", ipValue)
	}

	return !filterNet.Contains(ip), nil
}
