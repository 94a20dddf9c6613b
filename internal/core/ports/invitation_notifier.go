package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"
)

// InvitationNotifier sends a transport invitation to one carrier for one
// shipment request. Implementations deliver out-of-band (email); a failure
// for one carrier must not affect deliveries to others.
type InvitationNotifier interface {
	SendInvitation(
		ctx context.Context,
		recipient *carrier.Carrier,
		request *shipment.Request,
		carrierRequest *match.CarrierRequest,
	) error
}
