package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Service generates rotating QR links. Token is hex HMAC-SHA256 of
// deviceID+slot keyed by the shared secret, slot = floor(unix / interval).
type Service struct {
	secret   []byte
	deviceID string
	interval int64
	baseURL  string
}

func NewService(secret, deviceID string, interval time.Duration, baseURL string) *Service {
	seconds := int64(interval / time.Second)
	if seconds <= 0 {
		seconds = 1
	}

	return &Service{
		secret:   []byte(secret),
		deviceID: deviceID,
		interval: seconds,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (s *Service) Interval() time.Duration {
	return time.Duration(s.interval) * time.Second
}

// Slot returns time slot index of t.
func (s *Service) Slot(t time.Time) int64 {
	return t.Unix() / s.interval
}

// GenerateToken returns token of the slot containing t.
func (s *Service) GenerateToken(t time.Time) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.deviceID + strconv.FormatInt(s.Slot(t), 10)))

	return hex.EncodeToString(mac.Sum(nil))
}

// URL returns QR link of the slot containing t.
func (s *Service) URL(t time.Time) string {
	return fmt.Sprintf("%s/v/%s/%s", s.baseURL, s.deviceID, s.GenerateToken(t))
}

// UntilNextSlot returns time left until the next slot boundary.
func (s *Service) UntilNextSlot(t time.Time) time.Duration {
	next := time.Unix((s.Slot(t)+1)*s.interval, 0)
	return next.Sub(t)
}
