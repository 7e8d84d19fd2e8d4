package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ServerError means the backend answered with a non-2xx status.
// Message is decoded once from the backend's error envelope so callers
// never fish it out of raw bodies themselves.
type ServerError struct {
	Status  int
	Body    []byte
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server responded %d", e.Status)
}

// NetworkError means the request was sent but no usable response came
// back, including timeouts and connection failures.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ConfigError means the request could not be constructed or dispatched
// at all: a bad path, an unserializable body, a cancelled wait.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("request setup failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// errorEnvelope matches the error body shapes the backend emits.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newServerError(status int, body []byte) *ServerError {
	e := &ServerError{Status: status, Body: body}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Message != "":
			e.Message = env.Message
		case env.Error != "":
			e.Message = env.Error
		}
	}
	return e
}

// IsStatus reports whether err is a ServerError with the given status.
func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}
