// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence. A quote row owns its line item rows; both are written in
// the same transaction through GORM associations.
package quoterepo

import (
	"sort"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// All monetary values are stored in integer cents.
type QuoteDTO struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey"`
	RequestID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	BasePriceCents      int64         `gorm:"type:bigint;not null"`
	SurchargeTotalCents int64         `gorm:"type:bigint;not null"`
	TotalPriceCents     int64         `gorm:"type:bigint;not null"`
	Currency            string        `gorm:"type:varchar(3);not null"`
	Status              int           `gorm:"type:smallint;not null"`
	CreatedAt           time.Time     `gorm:"not null"`
	LineItems           []LineItemDTO `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for quote entities.
// Overrides GORM's default naming convention to use "quotes" instead of "quote_dtos".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// LineItemDTO represents one row of a quote's price breakdown.
// Line order is part of the primary key, so a quote cannot hold duplicates.
type LineItemDTO struct {
	QuoteID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineOrder   int       `gorm:"type:smallint;primaryKey"`
	Description string    `gorm:"type:varchar(255);not null"`
	Calculation string    `gorm:"type:varchar(255);not null"`
	AmountCents int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for quote line item entities.
// Overrides GORM's default naming convention to use "quote_line_items" instead
// of "line_item_dtos".
func (LineItemDTO) TableName() string {
	return "quote_line_items"
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) QuoteDTO {
	quoteID := aggregate.ID().Bytes()
	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))

	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			QuoteID:     quoteID,
			LineOrder:   item.LineOrder,
			Description: item.Description,
			Calculation: item.Calculation,
			AmountCents: item.Amount.Cents(),
		})
	}

	return QuoteDTO{
		ID:                  quoteID,
		RequestID:           aggregate.RequestID().Bytes(),
		BasePriceCents:      aggregate.BasePrice().Cents(),
		SurchargeTotalCents: aggregate.SurchargeTotal().Cents(),
		TotalPriceCents:     aggregate.TotalPrice().Cents(),
		Currency:            aggregate.Currency(),
		Status:              int(aggregate.Status()),
		CreatedAt:           aggregate.CreatedAt(),
		LineItems:           lineItems,
	}
}

// toDomain converts a database DTO to a quote domain aggregate.
// Line items are ordered by their line order before reconstruction, since the
// aggregate requires a contiguous breakdown.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.LineItems, func(i, j int) bool {
		return dto.LineItems[i].LineOrder < dto.LineItems[j].LineOrder
	})

	lineItems := make([]quote.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		lineItems = append(lineItems, quote.LineItem{
			Description: item.Description,
			Calculation: item.Calculation,
			Amount:      kernel.MoneyFromCents(item.AmountCents),
			LineOrder:   item.LineOrder,
		})
	}

	return quote.RestoreQuote(
		id,
		requestID,
		kernel.MoneyFromCents(dto.BasePriceCents),
		kernel.MoneyFromCents(dto.SurchargeTotalCents),
		lineItems,
		quote.Status(dto.Status),
		dto.CreatedAt,
	)
}
