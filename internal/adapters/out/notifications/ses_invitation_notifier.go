// Package notifications delivers transport invitations to carriers out of
// band. The SES implementation sends one plain-text email per invitation;
// carriers respond through the offer endpoint, not by replying.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/match"
	"freightmatch/internal/core/domain/model/shipment"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// emailSender is the narrow slice of the SES v2 client the notifier uses.
type emailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESInvitationNotifier implements ports.InvitationNotifier on top of Amazon
// SES v2. Carriers without a contact email on file are skipped with a log
// entry rather than an error, so one incomplete profile cannot stall a
// dispatch batch.
type SESInvitationNotifier struct {
	client emailSender
	sender string
	logger *slog.Logger
}

// NewSESInvitationNotifier creates a notifier sending from the given verified
// SES identity.
//
// Example:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    return err
//	}
//	notifier := NewSESInvitationNotifier(sesv2.NewFromConfig(cfg), "dispatch@freightmatch.example", logger)
func NewSESInvitationNotifier(client emailSender, sender string, logger *slog.Logger) *SESInvitationNotifier {
	return &SESInvitationNotifier{
		client: client,
		sender: sender,
		logger: logger.With("component", "ses_invitation_notifier"),
	}
}

// SendInvitation emails one transport invitation to one carrier.
func (n *SESInvitationNotifier) SendInvitation(
	ctx context.Context,
	recipient *carrier.Carrier,
	request *shipment.Request,
	carrierRequest *match.CarrierRequest,
) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return err
	}
	if err := carrierRequest.Validate(); err != nil {
		return err
	}

	if recipient.ContactEmail() == "" {
		n.logger.Warn("carrier has no contact email on file, skipping invitation",
			"carrierId", recipient.ID().String(),
			"carrierRequestId", carrierRequest.ID().String(),
		)
		return nil
	}

	subject := fmt.Sprintf("Transport invitation %s -> %s",
		orUnknown(request.PickupCountry()), orUnknown(request.DeliveryCountry()))
	body := buildInvitationBody(recipient, request, carrierRequest)

	_, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient.ContactEmail()},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	n.logger.Info("invitation sent",
		"carrierId", recipient.ID().String(),
		"carrierRequestId", carrierRequest.ID().String(),
	)
	return nil
}

// buildInvitationBody renders the plain-text invitation. No templating: the
// message is short and the offer details live in the portal, not the email.
func buildInvitationBody(
	recipient *carrier.Carrier,
	request *shipment.Request,
	carrierRequest *match.CarrierRequest,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", recipient.Name())
	fmt.Fprintf(&b, "a new transport matching your profile is available.\n\n")
	fmt.Fprintf(&b, "Route: %s -> %s\n", orUnknown(request.PickupCountry()), orUnknown(request.DeliveryCountry()))
	fmt.Fprintf(&b, "Pickup date: %s\n", request.PickupDate().Format("2006-01-02"))
	fmt.Fprintf(&b, "Vehicle: %s\n", request.VehicleRequirement().String())

	if request.DistanceKm() != nil {
		fmt.Fprintf(&b, "Route distance: %.0f km\n", *request.DistanceKm())
	}
	if carrierRequest.DistanceToPickupKm() != nil {
		fmt.Fprintf(&b, "Distance to pickup: %.0f km\n", *carrierRequest.DistanceToPickupKm())
	}

	fmt.Fprintf(&b, "\nReference: %s\n", carrierRequest.ID().String())
	fmt.Fprintf(&b, "Please submit your offer through the carrier portal.\n")

	return b.String()
}

func orUnknown(country string) string {
	if country == "" {
		return "unknown"
	}
	return country
}
