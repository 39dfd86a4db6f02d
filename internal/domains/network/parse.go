package network

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// splitTerse splits a line of "nmcli -t" output on unescaped colons.
// Escaped "\:" and "\\" are unescaped.
func splitTerse(line string) []string {
	fields := make([]string, 0, 4)

	var (
		field   strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	return append(fields, field.String())
}

// terseLines returns non-empty lines of terse output split into fields.
func terseLines(output []byte) [][]string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	lines = lo.Filter(lines, func(line string, _ int) bool {
		return lo.IsNotEmpty(strings.TrimSpace(line))
	})

	return lo.Map(lines, func(line string, _ int) []string {
		return splitTerse(strings.TrimRight(line, "\r"))
	})
}

// parseKeyValues parses "key:value" terse output of "nmcli -t -f ... show".
func parseKeyValues(output []byte) map[string]string {
	values := make(map[string]string)
	for _, fields := range terseLines(output) {
		if len(fields) < 2 {
			continue
		}

		values[fields[0]] = strings.TrimSpace(strings.Join(fields[1:], ":"))
	}

	return values
}

// parseSignal returns signal strength in percents, 0 when value is not a number.
func parseSignal(value string) int {
	signal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || signal < 0 {
		return 0
	}

	return signal
}

// stripPrefix returns address without "/prefix" suffix.
func stripPrefix(cidr string) string {
	address, _, _ := strings.Cut(cidr, "/")
	return strings.TrimSpace(address)
}

// parseDeviceState parses GENERAL.STATE value, e.g. "100 (connected)".
func parseDeviceState(value string) (code int, text string, ok bool) {
	rawCode, rest, _ := strings.Cut(strings.TrimSpace(value), " ")
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return 0, "", false
	}

	text = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(rest), "("), ")")
	return code, text, true
}
