package notifications_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"freightmatch/internal/adapters/out/notifications"
	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(
	ctx context.Context,
	params *sesv2.SendEmailInput,
	optFns ...func(*sesv2.Options),
) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

func testCarrier(t *testing.T, email string) *carrier.Carrier {
	t.Helper()

	c, err := carrier.NewCarrier(kernel.NewUUID(), carrier.CarrierSpec{
		Name:         "Nordfracht GmbH",
		ContactEmail: email,
		HasLKW:       true,
		Active:       true,
	})
	require.NoError(t, err)
	return c
}

func testRequest(t *testing.T) *shipment.Request {
	t.Helper()

	cargo, err := shipment.NewVehicleBookingCargo("lkw")
	require.NoError(t, err)

	distance := 570.0
	request, err := shipment.NewRequest(kernel.NewUUID(), shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: shipment.VehicleLKW,
		PickupCountry:      "DE",
		DeliveryCountry:    "PL",
		DistanceKm:         &distance,
		PickupDate:         time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
	}, time.Now())
	require.NoError(t, err)
	return request
}

func testCarrierRequest(t *testing.T, requestID kernel.UUID) *match.CarrierRequest {
	t.Helper()

	distance := 25.0
	record, err := match.NewCarrierRequest(
		kernel.NewUUID(), requestID, kernel.NewUUID(), &distance, nil, true, time.Now())
	require.NoError(t, err)
	require.NoError(t, record.MarkSent())
	return record
}

func Test_SESInvitationNotifier_SendInvitation(t *testing.T) {
	t.Run("should send email with route and reference", func(t *testing.T) {
		sender := new(MockEmailSender)
		notifier := notifications.NewSESInvitationNotifier(sender, "dispatch@freightmatch.example", slog.Default())

		recipient := testCarrier(t, "angebote@nordfracht.example")
		request := testRequest(t)
		record := testCarrierRequest(t, request.ID())

		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(input *sesv2.SendEmailInput) bool {
			if *input.FromEmailAddress != "dispatch@freightmatch.example" {
				return false
			}
			if len(input.Destination.ToAddresses) != 1 ||
				input.Destination.ToAddresses[0] != "angebote@nordfracht.example" {
				return false
			}
			body := *input.Content.Simple.Body.Text.Data
			return assert.Contains(t, body, "DE -> PL") &&
				assert.Contains(t, body, record.ID().String())
		})).Return(&sesv2.SendEmailOutput{}, nil).Once()

		err := notifier.SendInvitation(t.Context(), recipient, request, record)

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("should skip carriers without contact email", func(t *testing.T) {
		sender := new(MockEmailSender)
		notifier := notifications.NewSESInvitationNotifier(sender, "dispatch@freightmatch.example", slog.Default())

		recipient := testCarrier(t, "")
		request := testRequest(t)
		record := testCarrierRequest(t, request.ID())

		err := notifier.SendInvitation(t.Context(), recipient, request, record)

		require.NoError(t, err)
		sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("should wrap transport errors", func(t *testing.T) {
		sender := new(MockEmailSender)
		notifier := notifications.NewSESInvitationNotifier(sender, "dispatch@freightmatch.example", slog.Default())

		recipient := testCarrier(t, "angebote@nordfracht.example")
		request := testRequest(t)
		record := testCarrierRequest(t, request.ID())

		sendErr := errors.New("ses throttled")
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(nil, sendErr).Once()

		err := notifier.SendInvitation(t.Context(), recipient, request, record)

		require.Error(t, err)
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		sender := new(MockEmailSender)
		notifier := notifications.NewSESInvitationNotifier(sender, "dispatch@freightmatch.example", slog.Default())

		err := notifier.SendInvitation(t.Context(), &carrier.Carrier{}, testRequest(t), nil)

		require.Error(t, err)
		sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}
