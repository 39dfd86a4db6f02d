package pusher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// message is a Pusher protocol frame. Data of server events is a JSON encoded string.
type message struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type outMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type subscribeData struct {
	Channel string `json:"channel"`
}

type connectionEstablishedData struct {
	SocketID        string `json:"socket_id"`
	ActivityTimeout int    `json:"activity_timeout"`
}

type errorData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type fileEventData struct {
	BoxNumber any `json:"boxNumber"`
}

// decodeData unmarshals event data which may be an object or a string with encoded object.
func decodeData(raw json.RawMessage, target any) (err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err = json.Unmarshal(raw, &encoded); err != nil {
			return fmt.Errorf("decodeData: %w", err)
		}

		raw = []byte(encoded)
	}

	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decodeData: %w", err)
	}

	return nil
}

// parseBoxNumber extracts box number of file event. The number may be sent as a number or a string.
func parseBoxNumber(raw json.RawMessage) (number int, err error) {
	var data fileEventData
	if err = decodeData(raw, &data); err != nil {
		return 0, fmt.Errorf("parseBoxNumber: %w", err)
	}

	switch value := data.BoxNumber.(type) {
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("parseBoxNumber: fractional box number %v", value)
		}
		number = int(value)
	case string:
		if number, err = strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return 0, fmt.Errorf("parseBoxNumber: %w", err)
		}
	default:
		return 0, fmt.Errorf("parseBoxNumber: unexpected box number %v", data.BoxNumber)
	}

	if number == 0 {
		return 0, fmt.Errorf("parseBoxNumber: box number is not set")
	}

	return number, nil
}
