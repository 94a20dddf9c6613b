package queries

import (
	"context"
	"database/sql"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMatchesForRequestQueryHandler retrieves the carrier match records of one
// shipment request, joined with carrier names for display. Records appear in
// match creation order so repeated calls paint a stable picture.
//
// Example:
//
//	handler := NewGetMatchesForRequestQueryHandler(db)
//	query, _ := NewGetMatchesForRequestQuery(requestID)
//
//	matches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get matches: %v", err)
//	    return err
//	}
type GetMatchesForRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetMatchesForRequestQueryHandler creates a handler for match record queries.
// Requires a GORM database connection for query execution.
func NewGetMatchesForRequestQueryHandler(db *gorm.DB) GetMatchesForRequestQueryHandler {
	return GetMatchesForRequestQueryHandler{db: db}
}

// Handle executes the query to retrieve all match records for the request.
// Returns an empty slice when the request has no matches yet.
func (h GetMatchesForRequestQueryHandler) Handle(
	ctx context.Context,
	query GetMatchesForRequestQuery,
) ([]GetMatchesForRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matches := make([]GetMatchesForRequestQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cr.id,
			cr.carrier_id,
			c.name,
			cr.distance_to_pickup_km,
			cr.distance_to_delivery_km,
			cr.in_radius,
			cr.status,
			cr.offered_price_cents,
			cr.offered_delivery_date,
			cr.note
		FROM carrier_requests cr
		JOIN carriers c ON c.id = cr.carrier_id
		WHERE cr.request_id = ?
		ORDER BY cr.created_at, cr.id
	`, query.RequestID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var matchResp GetMatchesForRequestQueryResponse
		var id, carrierID uuid.UUID
		var name string
		var status match.Status
		var distanceToPickupKm, distanceToDeliveryKm sql.NullFloat64
		var inRadius bool
		var offeredPriceCents sql.NullInt64
		var offeredDeliveryDate sql.NullTime
		var note sql.NullString

		err = rows.Scan(
			&id,
			&carrierID,
			&name,
			&distanceToPickupKm,
			&distanceToDeliveryKm,
			&inRadius,
			&status,
			&offeredPriceCents,
			&offeredDeliveryDate,
			&note,
		)
		if err != nil {
			return nil, err
		}

		matchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		matchCarrierID, idErr := kernel.UUIDFromBytes(carrierID[:])
		if idErr != nil {
			return nil, idErr
		}

		matchResp.ID = matchID
		matchResp.CarrierID = matchCarrierID
		matchResp.CarrierName = name
		matchResp.InRadius = inRadius
		matchResp.Status = status.String()
		matchResp.Note = note.String
		if distanceToPickupKm.Valid {
			matchResp.DistanceToPickupKm = &distanceToPickupKm.Float64
		}
		if distanceToDeliveryKm.Valid {
			matchResp.DistanceToDeliveryKm = &distanceToDeliveryKm.Float64
		}
		if offeredPriceCents.Valid {
			matchResp.OfferedPriceCents = &offeredPriceCents.Int64
		}
		if offeredDeliveryDate.Valid {
			matchResp.OfferedDeliveryDate = &offeredDeliveryDate.Time
		}
		matches = append(matches, matchResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
