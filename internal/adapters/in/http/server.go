package http

import (
	"errors"
	"net/http"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/carrier"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/shipment"
	"freightmatch/internal/generated/servers"
	"freightmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler  commands.CreateShipmentRequestCommandHandler
	createCarrierHandler  commands.CreateCarrierCommandHandler
	calculateQuoteHandler commands.CalculateQuoteCommandHandler
	acceptQuoteHandler    commands.AcceptQuoteCommandHandler
	declineQuoteHandler   commands.DeclineQuoteCommandHandler
	runMatchingHandler    commands.RunMatchingCommandHandler
	dispatchHandler       commands.DispatchInvitationsCommandHandler
	submitOfferHandler    commands.SubmitOfferCommandHandler
	acceptOfferHandler    commands.AcceptOfferCommandHandler
	cancelRequestHandler  commands.CancelShipmentRequestCommandHandler

	// Query handlers
	getUncompletedRequestsHandler queries.GetUncompletedRequestsQueryHandler
	getMatchesForRequestHandler   queries.GetMatchesForRequestQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateShipmentRequestCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	calculateQuoteHandler commands.CalculateQuoteCommandHandler,
	acceptQuoteHandler commands.AcceptQuoteCommandHandler,
	declineQuoteHandler commands.DeclineQuoteCommandHandler,
	runMatchingHandler commands.RunMatchingCommandHandler,
	dispatchHandler commands.DispatchInvitationsCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	cancelRequestHandler commands.CancelShipmentRequestCommandHandler,
	getUncompletedRequestsHandler queries.GetUncompletedRequestsQueryHandler,
	getMatchesForRequestHandler queries.GetMatchesForRequestQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:          createRequestHandler,
		createCarrierHandler:          createCarrierHandler,
		calculateQuoteHandler:         calculateQuoteHandler,
		acceptQuoteHandler:            acceptQuoteHandler,
		declineQuoteHandler:           declineQuoteHandler,
		runMatchingHandler:            runMatchingHandler,
		dispatchHandler:               dispatchHandler,
		submitOfferHandler:            submitOfferHandler,
		acceptOfferHandler:            acceptOfferHandler,
		cancelRequestHandler:          cancelRequestHandler,
		getUncompletedRequestsHandler: getUncompletedRequestsHandler,
		getMatchesForRequestHandler:   getMatchesForRequestHandler,
	}
}

// CreateShipmentRequest handles POST /api/v1/requests - registers a new shipment request.
func (s *Server) CreateShipmentRequest(ctx echo.Context) error {
	var body servers.NewShipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := requestSpecFromBody(body)
	if err != nil {
		return badRequest(ctx, "Invalid shipment request data: "+err.Error())
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentRequestCommand(requestID, spec)
	if err != nil {
		return badRequest(ctx, "Invalid shipment request data: "+err.Error())
	}

	if handleErr := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to create shipment request")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: requestID.Bytes()})
}

// CreateCarrier handles POST /api/v1/carriers - registers a new carrier.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var body servers.NewCarrier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := carrierSpecFromBody(body)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, spec)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	if handleErr := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to create carrier")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: carrierID.Bytes()})
}

// CalculateQuote handles POST /api/v1/requests/{requestId}/quote.
func (s *Server) CalculateQuote(ctx echo.Context, requestID servers.RequestId) error {
	requestUUID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewCalculateQuoteCommand(requestUUID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	if handleErr := s.calculateQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to calculate quote")
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptQuote handles POST /api/v1/quotes/{quoteId}/accept.
func (s *Server) AcceptQuote(ctx echo.Context, quoteID servers.QuoteId) error {
	quoteUUID, err := kernel.UUIDFromBytes(quoteID[:])
	if err != nil {
		return badRequest(ctx, "Invalid quote id: "+err.Error())
	}

	cmd, err := commands.NewAcceptQuoteCommand(quoteUUID)
	if err != nil {
		return badRequest(ctx, "Invalid quote id: "+err.Error())
	}

	if handleErr := s.acceptQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to accept quote")
	}

	return ctx.NoContent(http.StatusOK)
}

// DeclineQuote handles POST /api/v1/quotes/{quoteId}/decline.
func (s *Server) DeclineQuote(ctx echo.Context, quoteID servers.QuoteId) error {
	quoteUUID, err := kernel.UUIDFromBytes(quoteID[:])
	if err != nil {
		return badRequest(ctx, "Invalid quote id: "+err.Error())
	}

	cmd, err := commands.NewDeclineQuoteCommand(quoteUUID)
	if err != nil {
		return badRequest(ctx, "Invalid quote id: "+err.Error())
	}

	if handleErr := s.declineQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to decline quote")
	}

	return ctx.NoContent(http.StatusOK)
}

// RunMatching handles POST /api/v1/requests/{requestId}/matching.
func (s *Server) RunMatching(ctx echo.Context, requestID servers.RequestId) error {
	requestUUID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewRunMatchingCommand(requestUUID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	matches, handleErr := s.runMatchingHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to run matching")
	}

	// Zero matches is a valid outcome, not an error
	return ctx.JSON(http.StatusOK, servers.MatchingResult{Matches: matches})
}

// DispatchInvitations handles POST /api/v1/requests/{requestId}/invitations.
func (s *Server) DispatchInvitations(ctx echo.Context, requestID servers.RequestId) error {
	requestUUID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewDispatchInvitationsCommand(requestUUID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	sent, handleErr := s.dispatchHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to dispatch invitations")
	}

	return ctx.JSON(http.StatusOK, servers.DispatchResult{Invitations: sent})
}

// SubmitOffer handles POST /api/v1/matches/{matchId}/offer.
func (s *Server) SubmitOffer(ctx echo.Context, matchID servers.MatchId) error {
	var body servers.NewOffer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	matchUUID, err := kernel.UUIDFromBytes(matchID[:])
	if err != nil {
		return badRequest(ctx, "Invalid match id: "+err.Error())
	}

	note := ""
	if body.Note != nil {
		note = *body.Note
	}

	cmd, err := commands.NewSubmitOfferCommand(
		matchUUID,
		kernel.MoneyFromCents(body.PriceCents),
		body.DeliveryDate,
		note,
	)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if handleErr := s.submitOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to submit offer")
	}

	return ctx.NoContent(http.StatusOK)
}

// AcceptOffer handles POST /api/v1/matches/{matchId}/accept.
func (s *Server) AcceptOffer(ctx echo.Context, matchID servers.MatchId) error {
	matchUUID, err := kernel.UUIDFromBytes(matchID[:])
	if err != nil {
		return badRequest(ctx, "Invalid match id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOfferCommand(matchUUID)
	if err != nil {
		return badRequest(ctx, "Invalid match id: "+err.Error())
	}

	if handleErr := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to accept offer")
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelShipmentRequest handles POST /api/v1/requests/{requestId}/cancel.
func (s *Server) CancelShipmentRequest(ctx echo.Context, requestID servers.RequestId) error {
	requestUUID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewCancelShipmentRequestCommand(requestUUID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	if handleErr := s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapHandlerError(ctx, handleErr, "Failed to cancel shipment request")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetShipmentRequests handles GET /api/v1/requests - lists uncompleted requests.
func (s *Server) GetShipmentRequests(ctx echo.Context) error {
	query := queries.NewGetUncompletedRequestsQuery()

	requests, err := s.getUncompletedRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment requests",
		})
	}

	response := make([]servers.ShipmentRequest, len(requests))
	for i, request := range requests {
		response[i] = servers.ShipmentRequest{
			Id:              request.ID.Bytes(),
			Status:          request.Status,
			PickupCountry:   request.PickupCountry,
			DeliveryCountry: request.DeliveryCountry,
			PickupDate:      request.PickupDate,
			CreatedAt:       request.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMatchesForRequest handles GET /api/v1/requests/{requestId}/matches.
func (s *Server) GetMatchesForRequest(ctx echo.Context, requestID servers.RequestId) error {
	requestUUID, err := kernel.UUIDFromBytes(requestID[:])
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	query, err := queries.NewGetMatchesForRequestQuery(requestUUID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	matches, err := s.getMatchesForRequestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve matches",
		})
	}

	response := make([]servers.Match, len(matches))
	for i, m := range matches {
		var note *string
		if m.Note != "" {
			noteValue := m.Note
			note = &noteValue
		}

		response[i] = servers.Match{
			Id:                   m.ID.Bytes(),
			CarrierId:            m.CarrierID.Bytes(),
			CarrierName:          m.CarrierName,
			DistanceToPickupKm:   m.DistanceToPickupKm,
			DistanceToDeliveryKm: m.DistanceToDeliveryKm,
			InRadius:             m.InRadius,
			Status:               m.Status,
			OfferedPriceCents:    m.OfferedPriceCents,
			OfferedDeliveryDate:  m.OfferedDeliveryDate,
			Note:                 note,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapHandlerError translates use case errors to HTTP status codes. Missing
// aggregates map to 404, a missing pricing rule to 422, rejected state
// transitions to 409, anything else to 500.
func mapHandlerError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrRequestNotFound),
		errors.Is(err, commands.ErrQuoteNotFound),
		errors.Is(err, commands.ErrCarrierRequestNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrNoPricingRule):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func requestSpecFromBody(body servers.NewShipmentRequest) (shipment.RequestSpec, error) {
	cargo, err := cargoFromBody(body.Cargo)
	if err != nil {
		return shipment.RequestSpec{}, err
	}

	vehicleRequirement, err := vehicleRequirementFromBody(body.VehicleRequirement)
	if err != nil {
		return shipment.RequestSpec{}, err
	}

	pickupLocation, err := locationFromBody(body.PickupLocation)
	if err != nil {
		return shipment.RequestSpec{}, err
	}
	deliveryLocation, err := locationFromBody(body.DeliveryLocation)
	if err != nil {
		return shipment.RequestSpec{}, err
	}

	return shipment.RequestSpec{
		Cargo:              cargo,
		VehicleRequirement: vehicleRequirement,
		Equipment:          equipmentRequirementsFromBody(body.Equipment),
		PickupLocation:     pickupLocation,
		DeliveryLocation:   deliveryLocation,
		PickupCountry:      body.PickupCountry,
		DeliveryCountry:    body.DeliveryCountry,
		DistanceKm:         body.DistanceKm,
		PickupDate:         body.PickupDate,
	}, nil
}

func cargoFromBody(body servers.Cargo) (shipment.Cargo, error) {
	switch body.Mode {
	case servers.CargoModePackages:
		if body.Packages == nil {
			return nil, errs.NewValueIsRequiredError("packages")
		}
		packages := make([]shipment.Package, len(*body.Packages))
		for i, p := range *body.Packages {
			packages[i] = shipment.Package{
				LengthCm: p.LengthCm,
				WidthCm:  p.WidthCm,
				HeightCm: p.HeightCm,
				WeightKg: p.WeightKg,
			}
		}
		return shipment.NewPackagesCargo(packages)
	case servers.CargoModeLoadingMeters:
		if body.LoadingMeters == nil {
			return nil, errs.NewValueIsRequiredError("loadingMeters")
		}
		return shipment.NewLoadingMetersCargo(*body.LoadingMeters, body.HeightCm, body.WeightKg)
	case servers.CargoModeVehicleBooking:
		if body.VehicleType == nil {
			return nil, errs.NewValueIsRequiredError("vehicleType")
		}
		return shipment.NewVehicleBookingCargo(*body.VehicleType)
	default:
		return nil, errs.NewValueIsInvalidError("cargo mode")
	}
}

func vehicleRequirementFromBody(
	requirement servers.NewShipmentRequestVehicleRequirement,
) (shipment.VehicleRequirement, error) {
	switch requirement {
	case servers.NewShipmentRequestVehicleRequirementEither:
		return shipment.VehicleEither, nil
	case servers.NewShipmentRequestVehicleRequirementTransporter:
		return shipment.VehicleTransporter, nil
	case servers.NewShipmentRequestVehicleRequirementLkw:
		return shipment.VehicleLKW, nil
	default:
		return shipment.VehicleUnknown, errs.NewValueIsInvalidError("vehicle requirement")
	}
}

func locationFromBody(location *servers.Location) (*kernel.GeoPoint, error) {
	if location == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(location.Lat, location.Lon)
	if err != nil {
		return nil, err
	}

	return &point, nil
}

func equipmentRequirementsFromBody(equipment *servers.Equipment) shipment.EquipmentRequirements {
	if equipment == nil {
		return shipment.EquipmentRequirements{}
	}

	return shipment.EquipmentRequirements{
		Liftgate:    boolValue(equipment.Liftgate),
		PalletJack:  boolValue(equipment.PalletJack),
		GPSTracking: boolValue(equipment.GpsTracking),
		SideLoading: boolValue(equipment.SideLoading),
		Tarp:        boolValue(equipment.Tarp),
	}
}

func carrierSpecFromBody(body servers.NewCarrier) (carrier.CarrierSpec, error) {
	location, err := locationFromBody(body.Location)
	if err != nil {
		return carrier.CarrierSpec{}, err
	}

	pickupCountries, err := kernel.NewCountrySet(body.PickupCountries...)
	if err != nil {
		return carrier.CarrierSpec{}, err
	}
	deliveryCountries, err := kernel.NewCountrySet(body.DeliveryCountries...)
	if err != nil {
		return carrier.CarrierSpec{}, err
	}

	// New carriers default to active unless explicitly disabled
	active := true
	if body.Active != nil {
		active = *body.Active
	}

	contactEmail := ""
	if body.ContactEmail != nil {
		contactEmail = *body.ContactEmail
	}

	var equipment carrier.Equipment
	if body.Equipment != nil {
		equipment = carrier.Equipment{
			Liftgate:    boolValue(body.Equipment.Liftgate),
			PalletJack:  boolValue(body.Equipment.PalletJack),
			GPSTracking: boolValue(body.Equipment.GpsTracking),
			SideLoading: boolValue(body.Equipment.SideLoading),
			Tarp:        boolValue(body.Equipment.Tarp),
		}
	}

	return carrier.CarrierSpec{
		Name:              body.Name,
		ContactEmail:      contactEmail,
		Location:          location,
		ServiceRadiusKm:   body.ServiceRadiusKm,
		IgnoreRadius:      boolValue(body.IgnoreRadius),
		HasTransporter:    body.HasTransporter,
		HasLKW:            body.HasLKW,
		BoxLengthCm:       body.BoxLengthCm,
		BoxWidthCm:        body.BoxWidthCm,
		BoxHeightCm:       body.BoxHeightCm,
		Equipment:         equipment,
		PickupCountries:   pickupCountries,
		DeliveryCountries: deliveryCountries,
		Active:            active,
		Blacklisted:       boolValue(body.Blacklisted),
	}, nil
}

func boolValue(value *bool) bool {
	return value != nil && *value
}
