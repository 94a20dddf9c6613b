package match

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a carrier request.
type Status int

const (
	// StatusUnknown is the zero value, it is not a valid status.
	StatusUnknown Status = iota
	// StatusNew - the match has been recorded but no invitation was sent yet.
	StatusNew
	// StatusSent - the invitation has been dispatched to the carrier.
	StatusSent
	// StatusOffered - the carrier has submitted a price offer.
	StatusOffered
	// StatusWon - the shipper accepted this carrier's offer.
	StatusWon
	// StatusRejected - another offer won, or the offer was turned down.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusNew:      "New",
		StatusSent:     "Sent",
		StatusOffered:  "Offered",
		StatusWon:      "Won",
		StatusRejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:      "New",
		StatusSent:     "Sent",
		StatusOffered:  "Offered",
		StatusWon:      "Won",
		StatusRejected: "Rejected",
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
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusRejected
}

// MarkSent transitions New -> Sent when the invitation goes out.
func (s Status) MarkSent() (Status, error) {
	if s != StatusNew {
		return s, s.transitionError("mark sent")
	}
	return StatusSent, nil
}

// SubmitOffer transitions Sent -> Offered when the carrier responds with a price.
func (s Status) SubmitOffer() (Status, error) {
	if s != StatusSent {
		return s, s.transitionError("submit an offer for")
	}
	return StatusOffered, nil
}

// Win transitions Offered -> Won when the shipper accepts this offer.
func (s Status) Win() (Status, error) {
	if s != StatusOffered {
		return s, s.transitionError("accept the offer of")
	}
	return StatusWon, nil
}

// Reject transitions Offered -> Rejected when a sibling offer wins,
// or the offer is turned down.
func (s Status) Reject() (Status, error) {
	if s != StatusOffered {
		return s, s.transitionError("reject")
	}
	return StatusRejected, nil
}

func (s Status) transitionError(action string) error {
	return fmt.Errorf("cannot %s a carrier request in status %q", action, s)
}
