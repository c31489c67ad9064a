package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingOwnerID       = errors.New("owner id is required")
	ErrInvalidOwnerType     = errors.New("owner type must be guild (1) or user (2)")
	ErrMissingEntitlementID = errors.New("entitlement id is required")
)

// ConfigurationError is returned by NewClient when required credentials are missing.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("entitlement client misconfigured: missing %s", strings.Join(e.Missing, ", "))
}

// RemoteAPIError reports a failed call to the remote API. StatusCode is zero
// when the request never produced a response; Err then holds the cause.
type RemoteAPIError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Body)
	default:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}
