package match_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
)

func floatPtr(v float64) *float64 { return &v }

func newCarrierRequest(t *testing.T) *match.CarrierRequest {
	t.Helper()
	cr, err := match.NewCarrierRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		floatPtr(42.5),
		floatPtr(480.25),
		true,
		time.Now(),
	)
	require.NoError(t, err)
	return cr
}

func Test_NewCarrierRequest(t *testing.T) {
	id := kernel.NewUUID()
	requestID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	cr, err := match.NewCarrierRequest(id, requestID, carrierID, floatPtr(10), nil, false, time.Now())

	require.NoError(t, err)
	assert.NoError(t, cr.Validate())
	assert.True(t, cr.ID().IsEqual(id))
	assert.True(t, cr.RequestID().IsEqual(requestID))
	assert.True(t, cr.CarrierID().IsEqual(carrierID))
	assert.Equal(t, match.StatusNew, cr.Status())
	assert.Equal(t, 10.0, *cr.DistanceToPickupKm())
	assert.Nil(t, cr.DistanceToDeliveryKm())
	assert.False(t, cr.InRadius())
	assert.Nil(t, cr.OfferedPrice())
}

func Test_NewCarrierRequest_Invalid(t *testing.T) {
	t.Run("empty ids", func(t *testing.T) {
		cr, err := match.NewCarrierRequest(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil, nil, false, time.Now())

		assert.Error(t, err)
		assert.Nil(t, cr)
	})

	t.Run("negative distance", func(t *testing.T) {
		cr, err := match.NewCarrierRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), floatPtr(-1), nil, false, time.Now())

		assert.Error(t, err)
		assert.Nil(t, cr)
	})
}

func Test_CarrierRequest_Lifecycle(t *testing.T) {
	cr := newCarrierRequest(t)
	deliveryDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cr.MarkSent())
	assert.Equal(t, match.StatusSent, cr.Status())

	require.NoError(t, cr.SubmitOffer(match.Offer{
		Price:        kernel.MoneyFromCents(65000),
		DeliveryDate: &deliveryDate,
		Note:         "can load Monday morning",
	}))
	assert.Equal(t, match.StatusOffered, cr.Status())
	assert.Equal(t, int64(65000), cr.OfferedPrice().Cents())
	assert.Equal(t, deliveryDate, *cr.OfferedDeliveryDate())
	assert.Equal(t, "can load Monday morning", cr.Note())

	require.NoError(t, cr.Win())
	assert.Equal(t, match.StatusWon, cr.Status())
	assert.True(t, cr.Status().IsTerminal())
}

func Test_CarrierRequest_Reject(t *testing.T) {
	cr := newCarrierRequest(t)
	require.NoError(t, cr.MarkSent())
	require.NoError(t, cr.SubmitOffer(match.Offer{Price: kernel.MoneyFromCents(70000)}))

	require.NoError(t, cr.Reject())

	assert.Equal(t, match.StatusRejected, cr.Status())
}

func Test_CarrierRequest_InvalidTransitions(t *testing.T) {
	t.Run("offer before sent", func(t *testing.T) {
		cr := newCarrierRequest(t)

		err := cr.SubmitOffer(match.Offer{Price: kernel.MoneyFromCents(100)})

		assert.Error(t, err)
		assert.Equal(t, match.StatusNew, cr.Status())
	})

	t.Run("win before offer", func(t *testing.T) {
		cr := newCarrierRequest(t)
		require.NoError(t, cr.MarkSent())

		assert.Error(t, cr.Win())
		assert.Error(t, cr.Reject())
	})

	t.Run("terminal is final", func(t *testing.T) {
		cr := newCarrierRequest(t)
		require.NoError(t, cr.MarkSent())
		require.NoError(t, cr.SubmitOffer(match.Offer{Price: kernel.MoneyFromCents(100)}))
		require.NoError(t, cr.Win())

		assert.Error(t, cr.Reject())
		assert.Error(t, cr.MarkSent())
	})

	t.Run("negative offer price", func(t *testing.T) {
		cr := newCarrierRequest(t)
		require.NoError(t, cr.MarkSent())

		err := cr.SubmitOffer(match.Offer{Price: kernel.MoneyFromCents(-1)})

		assert.Error(t, err)
		assert.Equal(t, match.StatusSent, cr.Status())
	})
}

func Test_RestoreCarrierRequest(t *testing.T) {
	id := kernel.NewUUID()
	price := kernel.MoneyFromCents(65000)
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	cr, err := match.RestoreCarrierRequest(
		id, kernel.NewUUID(), kernel.NewUUID(),
		floatPtr(42.5), floatPtr(480.25), true,
		match.StatusOffered, &price, nil, "note", createdAt)

	require.NoError(t, err)
	assert.Equal(t, match.StatusOffered, cr.Status())
	assert.Equal(t, int64(65000), cr.OfferedPrice().Cents())
	assert.Equal(t, createdAt, cr.CreatedAt())
}

func Test_RestoreCarrierRequest_InvalidStatus(t *testing.T) {
	cr, err := match.RestoreCarrierRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, nil, false, match.StatusUnknown, nil, nil, "", time.Now())

	assert.Error(t, err)
	assert.Nil(t, cr)
}

func Test_Status_Strings(t *testing.T) {
	assert.Equal(t, "New", match.StatusNew.String())
	assert.Equal(t, "Sent", match.StatusSent.String())
	assert.Equal(t, "Offered", match.StatusOffered.String())
	assert.Equal(t, "Won", match.StatusWon.String())
	assert.Equal(t, "Rejected", match.StatusRejected.String())
	assert.Equal(t, "Unknown", match.Status(99).String())
}

func Test_Status_Validate(t *testing.T) {
	assert.NoError(t, match.StatusSent.Validate())
	assert.Error(t, match.StatusUnknown.Validate())
	assert.Error(t, match.Status(99).Validate())
}
