package quote

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a quote.
type Status int

const (
	// StatusUnknown is the zero value, it is not a valid status.
	StatusUnknown Status = iota
	// StatusPending - the quote awaits the shipper's decision.
	StatusPending
	// StatusAccepted - the shipper accepted the price.
	StatusAccepted
	// StatusDeclined - the shipper declined the price.
	StatusDeclined
	// StatusExpired - the quote lapsed before a decision.
	StatusExpired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusPending:  "Pending",
		StatusAccepted: "Accepted",
		StatusDeclined: "Declined",
		StatusExpired:  "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "Pending",
		StatusAccepted: "Accepted",
		StatusDeclined: "Declined",
		StatusExpired:  "Expired",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
// Every status except Pending is terminal.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined || s == StatusExpired
}

// Accept transitions Pending -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return s, s.transitionError("accept")
	}
	return StatusAccepted, nil
}

// Decline transitions Pending -> Declined.
func (s Status) Decline() (Status, error) {
	if s != StatusPending {
		return s, s.transitionError("decline")
	}
	return StatusDeclined, nil
}

// Expire transitions Pending -> Expired.
func (s Status) Expire() (Status, error) {
	if s != StatusPending {
		return s, s.transitionError("expire")
	}
	return StatusExpired, nil
}

func (s Status) transitionError(action string) error {
	return fmt.Errorf("cannot %s a quote in status %q", action, s)
}
