package server

import (
	"encoding/json"
	"errors"
	"time"
)

// FlexString is a JSON string that also accepts bare numbers, which keep
// their literal decimal form ("123" for 123). Any other JSON shape is a
// decode error.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	return errors.New("not a JSON string or number")
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse carries service metadata. GitSHA serialises as null when the
// deployment did not provide one.
type InfoResponse struct {
	ServiceName   string  `json:"service_name"`
	Version       string  `json:"version"`
	GitSHA        *string `json:"git_sha"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// EchoRequest is the POST /echo payload. Message is a pointer so that an
// absent or null field fails the required rule while an empty string passes.
type EchoRequest struct {
	Message *FlexString `json:"message" validate:"required"`
}

// EchoResponse returns the submitted message with the server-side timestamp.
type EchoResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
