package queries

import (
	"context"
	"database/sql"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedRequestsQueryHandler retrieves shipment requests that have not
// reached a terminal status from the database. Useful for dashboards and
// operational monitoring of the matching pipeline.
//
// Example:
//
//	handler := NewGetUncompletedRequestsQueryHandler(db)
//	query := NewGetUncompletedRequestsQuery()
//
//	openRequests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open requests: %v", err)
//	    return err
//	}
//
//	if len(openRequests) > 0 {
//	    fmt.Printf("%d requests in flight\n", len(openRequests))
//	}
type GetUncompletedRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedRequestsQueryHandler creates a handler for open request queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedRequestsQueryHandler(db *gorm.DB) GetUncompletedRequestsQueryHandler {
	return GetUncompletedRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted shipment requests.
// Returns every request except those in Delivered or Cancelled status.
// Results are sorted by creation time, oldest first.
func (h GetUncompletedRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedRequestsQuery,
) ([]GetUncompletedRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetUncompletedRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			pickup_country,
			delivery_country,
			pickup_date,
			created_at
		FROM shipment_requests
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, shipment.StatusDelivered, shipment.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var requestResp GetUncompletedRequestsQueryResponse
		var id uuid.UUID
		var status shipment.Status
		var pickupCountry, deliveryCountry sql.NullString
		var pickupDate, createdAt time.Time

		err = rows.Scan(
			&id,
			&status,
			&pickupCountry,
			&deliveryCountry,
			&pickupDate,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		requestResp.ID = requestID
		requestResp.Status = status.String()
		requestResp.PickupCountry = pickupCountry.String
		requestResp.DeliveryCountry = deliveryCountry.String
		requestResp.PickupDate = pickupDate
		requestResp.CreatedAt = createdAt
		requests = append(requests, requestResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
