package pusher

import (
	"encoding/json"
	"time"
)

func ParseBoxNumber(raw json.RawMessage) (int, error) {
	return parseBoxNumber(raw)
}

func (s *Service) SetActivityTimeout(activity, pongWait time.Duration) {
	s.activityTimeout = activity
	s.pongWait = pongWait
}
