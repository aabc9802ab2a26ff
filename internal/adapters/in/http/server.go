package http

import (
	"encoding/base64"
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// qrImageSize is the edge length in pixels of generated QR code images.
const qrImageSize = 256

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler       commands.CreateParcelCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	recordTransactionHandler  commands.RecordTransactionCommandHandler

	// Query handlers
	getParcelByTrackingIDHandler queries.GetParcelByTrackingIDQueryHandler
	getParcelsBySenderHandler    queries.GetParcelsBySenderQueryHandler
	getParcelsByDriverHandler    queries.GetParcelsByDriverQueryHandler
	getTransactionsByUserHandler queries.GetTransactionsByUserQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	recordTransactionHandler commands.RecordTransactionCommandHandler,
	getParcelByTrackingIDHandler queries.GetParcelByTrackingIDQueryHandler,
	getParcelsBySenderHandler queries.GetParcelsBySenderQueryHandler,
	getParcelsByDriverHandler queries.GetParcelsByDriverQueryHandler,
	getTransactionsByUserHandler queries.GetTransactionsByUserQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:          createParcelHandler,
		updateParcelStatusHandler:    updateParcelStatusHandler,
		assignDriverHandler:          assignDriverHandler,
		recordTransactionHandler:     recordTransactionHandler,
		getParcelByTrackingIDHandler: getParcelByTrackingIDHandler,
		getParcelsBySenderHandler:    getParcelsBySenderHandler,
		getParcelsByDriverHandler:    getParcelsByDriverHandler,
		getTransactionsByUserHandler: getTransactionsByUserHandler,
	}
}

// RegisterRoutes wires all API routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/tracking/:trackingId", s.TrackParcel)
	api.PATCH("/parcels/:id/status", s.UpdateParcelStatus)
	api.POST("/parcels/:id/driver", s.AssignDriver)
	api.GET("/parcels/sender/:senderId", s.GetParcelsBySender)
	api.GET("/parcels/driver/:driverId", s.GetParcelsByDriver)
	api.GET("/qr/:trackingId", s.GetQRCode)
	api.POST("/transactions", s.RecordTransaction)
	api.GET("/transactions/:userId", s.GetWallet)
}

// CreateParcel handles POST /api/parcels - registers a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	params, err := createParcelParamsFromRequest(request)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	cmd, err := commands.NewCreateParcelCommand(params)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	result, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to create parcel")
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ID:         result.ParcelID.String(),
		TrackingID: result.TrackingID,
		QRHash:     result.QRHash,
	})
}

// TrackParcel handles GET /api/parcels/tracking/:trackingId - the public
// tracking lookup with the full audit timeline.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewGetParcelByTrackingIDQuery(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	response, err := s.getParcelByTrackingIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve parcel")
	}

	timeline := make([]TimelineEvent, len(response.Timeline))
	for i, event := range response.Timeline {
		timeline[i] = TimelineEvent{
			ID:         event.ID.String(),
			ActorRole:  event.ActorRole,
			Status:     event.Status,
			Location:   event.Location,
			Notes:      event.Notes,
			Photo:      event.Photo,
			OccurredAt: event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		Parcel:   parcelFromResponse(response.Parcel),
		Timeline: timeline,
	})
}

// UpdateParcelStatus handles PATCH /api/parcels/:id/status - moves a parcel
// along its lifecycle and appends the audit event.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var request UpdateParcelStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	next, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}
	actorRole, err := parcel.ActorRoleFromString(request.ActorRole)
	if err != nil {
		return badRequest(ctx, "Invalid actor role: "+err.Error())
	}
	var driverID *kernel.UUID
	if request.DriverID != nil {
		id, parseErr := kernel.UUIDFromString(*request.DriverID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		driverID = &id
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, next, actorID, actorRole,
		request.Location, request.Notes, request.Proof, driverID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update parcel status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/parcels/:id/driver - assigns a driver to a
// parcel.
func (s *Server) AssignDriver(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var request AssignDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(parcelID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to assign driver")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcelsBySender handles GET /api/parcels/sender/:senderId - lists a
// sender's parcels, newest first.
func (s *Server) GetParcelsBySender(ctx echo.Context) error {
	senderID, err := kernel.UUIDFromString(ctx.Param("senderId"))
	if err != nil {
		return badRequest(ctx, "Invalid sender id")
	}

	query, err := queries.NewGetParcelsBySenderQuery(senderID)
	if err != nil {
		return badRequest(ctx, "Invalid sender id")
	}

	parcels, err := s.getParcelsBySenderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve parcels")
	}

	return ctx.JSON(http.StatusOK, parcelsFromResponses(parcels))
}

// GetParcelsByDriver handles GET /api/parcels/driver/:driverId - lists a
// driver's assigned parcels, newest first.
func (s *Server) GetParcelsByDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetParcelsByDriverQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	parcels, err := s.getParcelsByDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve parcels")
	}

	return ctx.JSON(http.StatusOK, parcelsFromResponses(parcels))
}

// GetQRCode handles GET /api/qr/:trackingId - renders the parcel's QR code
// as a base64 PNG data URL. The encoded payload is the tracking id itself;
// the response also carries the verification hash so scanners can check it.
func (s *Server) GetQRCode(ctx echo.Context) error {
	query, err := queries.NewGetParcelByTrackingIDQuery(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking id")
	}

	response, err := s.getParcelByTrackingIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve parcel")
	}

	png, err := qrcode.Encode(response.Parcel.TrackingID, qrcode.Medium, qrImageSize)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate QR code",
		})
	}

	return ctx.JSON(http.StatusOK, QRCodeResponse{
		TrackingID: response.Parcel.TrackingID,
		QRHash:     response.Parcel.QRHash,
		QRCode:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

// RecordTransaction handles POST /api/transactions - appends a wallet ledger
// entry.
func (s *Server) RecordTransaction(ctx echo.Context) error {
	var request RecordTransactionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return badRequest(ctx, "Invalid transaction data: "+err.Error())
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}
	var parcelID *kernel.UUID
	if request.ParcelID != nil {
		id, parseErr := kernel.UUIDFromString(*request.ParcelID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid parcel id")
		}
		parcelID = &id
	}
	transactionType, err := wallet.TransactionTypeFromString(request.Type)
	if err != nil {
		return badRequest(ctx, "Invalid transaction type: "+err.Error())
	}
	amount, err := kernel.NewMoneyFromString(request.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}
	status, err := wallet.TransactionStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid transaction status: "+err.Error())
	}

	cmd, err := commands.NewRecordTransactionCommand(
		userID, parcelID, transactionType, amount, status, request.Description,
	)
	if err != nil {
		return badRequest(ctx, "Invalid transaction data: "+err.Error())
	}

	if handleErr := s.recordTransactionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to record transaction")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetWallet handles GET /api/transactions/:userId - returns a user's ledger
// together with the current balance.
func (s *Server) GetWallet(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetTransactionsByUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	response, err := s.getTransactionsByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve wallet")
	}

	transactions := make([]Transaction, len(response.Transactions))
	for i, entry := range response.Transactions {
		transactions[i] = Transaction{
			ID:          entry.ID.String(),
			ParcelID:    optionalUUIDString(entry.ParcelID),
			Type:        entry.Type,
			Amount:      entry.Amount,
			Status:      entry.Status,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, WalletResponse{
		Balance:      response.Balance,
		Transactions: transactions,
	})
}

func createParcelParamsFromRequest(request CreateParcelRequest) (commands.CreateParcelCommandParams, error) {
	senderID, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return commands.CreateParcelCommandParams{}, err
	}
	senderRole, err := parcel.ActorRoleFromString(request.SenderRole)
	if err != nil {
		return commands.CreateParcelCommandParams{}, err
	}
	weight, err := decimal.NewFromString(request.Weight)
	if err != nil {
		return commands.CreateParcelCommandParams{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return commands.CreateParcelCommandParams{}, err
	}
	paymentMethod, err := parcel.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return commands.CreateParcelCommandParams{}, err
	}

	params := commands.CreateParcelCommandParams{
		ParcelID:       kernel.NewUUID(),
		SenderID:       senderID,
		SenderRole:     senderRole,
		RecipientName:  request.RecipientName,
		RecipientPhone: request.RecipientPhone,
		Weight:         weight,
		Price:          price,
		PaymentMethod:  paymentMethod,
		Description:    request.Description,
		Photos:         request.Photos,
	}

	if request.PickupPartnerID != nil {
		id, parseErr := kernel.UUIDFromString(*request.PickupPartnerID)
		if parseErr != nil {
			return commands.CreateParcelCommandParams{}, parseErr
		}
		params.PickupPartnerID = &id
	}
	if request.DropoffPartnerID != nil {
		id, parseErr := kernel.UUIDFromString(*request.DropoffPartnerID)
		if parseErr != nil {
			return commands.CreateParcelCommandParams{}, parseErr
		}
		params.DropoffPartnerID = &id
	}
	if request.Distance != nil {
		distance, parseErr := decimal.NewFromString(*request.Distance)
		if parseErr != nil {
			return commands.CreateParcelCommandParams{}, errs.NewValueIsInvalidErrorWithCause("distance", parseErr)
		}
		params.Distance = &distance
	}

	return params, nil
}

func parcelFromResponse(response queries.ParcelResponse) Parcel {
	return Parcel{
		ID:             response.ID.String(),
		TrackingID:     response.TrackingID,
		QRHash:         response.QRHash,
		SenderID:       response.SenderID.String(),
		RecipientName:  response.RecipientName,
		RecipientPhone: response.RecipientPhone,
		DriverID:       optionalUUIDString(response.DriverID),
		Status:         response.Status,
		Weight:         response.Weight,
		Price:          response.Price,
		PaymentMethod:  response.PaymentMethod,
		IsPaid:         response.IsPaid,
		Description:    response.Description,
		DeliveryProof:  response.DeliveryProof,
		Rating:         response.Rating,
		CreatedAt:      response.CreatedAt,
		DeliveredAt:    response.DeliveredAt,
	}
}

func parcelsFromResponses(responses []queries.ParcelResponse) []Parcel {
	parcels := make([]Parcel, len(responses))
	for i, response := range responses {
		parcels[i] = parcelFromResponse(response)
	}
	return parcels
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the domain error taxonomy onto HTTP status codes:
// validation failures become 400, missing objects 404, and conflicts
// (illegal transitions, stale versions, duplicate tracking ids) 409.
func domainError(ctx echo.Context, err error, fallback string) error {
	code := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, gorm.ErrDuplicatedKey):
		code = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
