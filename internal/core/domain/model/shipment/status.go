package shipment

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment request.
// It implements a state machine with defined transitions so requests
// follow the correct business workflow.
//
// State transitions:
//
//	New ──> Matching ──> Matched ──> InTransit ──> Delivered
//	 ▲         │
//	 └─────────┘
//	(reset when matching found no carriers)
//
// Cancelled is reachable from any non-terminal state. Delivered and
// Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status of a freshly created request.
	// Only requests in this status are eligible for a matching run.
	StatusNew

	// StatusMatching indicates a matching run is in progress or carrier
	// invitations are pending a response.
	StatusMatching

	// StatusMatched indicates a carrier offer was accepted and the request
	// has a matched carrier.
	StatusMatched

	// StatusInTransit indicates the cargo has been picked up.
	StatusInTransit

	// StatusDelivered indicates the cargo reached its destination. Terminal.
	StatusDelivered

	// StatusCancelled indicates the request was withdrawn. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusNew:       "New",
		StatusMatching:  "Matching",
		StatusMatched:   "Matched",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:       "New",
		StatusMatching:  "Matching",
		StatusMatched:   "Matched",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
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
// This method implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// StartMatching transitions the status to Matching.
//
// Valid transitions:
//   - New -> Matching (matching run claimed the request)
func (s Status) StartMatching() (Status, error) {
	if s != StatusNew {
		return 0, s.transitionError("start matching")
	}
	return StatusMatching, nil
}

// ResetToNew transitions the status back to New.
//
// Valid transitions:
//   - Matching -> New (matching run produced zero candidates; the request
//     becomes eligible for a re-run with adjusted criteria)
func (s Status) ResetToNew() (Status, error) {
	if s != StatusMatching {
		return 0, s.transitionError("reset to new")
	}
	return StatusNew, nil
}

// MarkMatched transitions the status to Matched.
//
// Valid transitions:
//   - Matching -> Matched (a carrier offer was accepted)
func (s Status) MarkMatched() (Status, error) {
	if s != StatusMatching {
		return 0, s.transitionError("mark matched")
	}
	return StatusMatched, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Matched -> InTransit (cargo picked up)
func (s Status) StartTransit() (Status, error) {
	if s != StatusMatched {
		return 0, s.transitionError("start transit")
	}
	return StatusInTransit, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (cargo delivered). Terminal.
func (s Status) CompleteDelivery() (Status, error) {
	if s != StatusInTransit {
		return 0, s.transitionError("complete delivery")
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status. Terminal.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, s.transitionError("cancel")
	}
	return StatusCancelled, nil
}

// ValidateCanHaveCarrier validates the consistency between request status and
// carrier assignment. A matched carrier reference is only allowed once the
// request reached Matched, and is required from Matched through Delivered.
func (s Status) ValidateCanHaveCarrier(hasCarrier bool) error {
	requiresCarrier := s == StatusMatched || s == StatusInTransit || s == StatusDelivered

	if hasCarrier && !requiresCarrier && s != StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a matched carrier", s))
	}

	if !hasCarrier && requiresCarrier {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no matched carrier", s))
	}

	return nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, action))
}
