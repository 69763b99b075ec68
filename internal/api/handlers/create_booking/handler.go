package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	"github.com/m04kA/CWS-PassService/internal/api/middleware"
	createBooking "github.com/m04kA/CWS-PassService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidSelection   = "некорректный выбор пропуска"
	msgCGVNotAccepted     = "необходимо принять условия обслуживания"
	msgDateNotBookable    = "выбор содержит недоступную дату"
	msgResourceNotFound   = "ресурс не найден"
	msgResourceFull       = "на выбранные даты нет свободных мест"
	msgPaymentUnavailable = "платежный сервис временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCGVNotAccepted):
			h.logger.Warn("POST /bookings - CGV not accepted: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgCGVNotAccepted)

		case errors.Is(err, createBooking.ErrInvalidSelection),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid selection: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrResourceFull):
			h.logger.Warn("POST /bookings - Resource full: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondConflict(w, msgResourceFull)

		case errors.Is(err, createBooking.ErrPaymentUnavailable):
			h.logger.Error("POST /bookings - Payment gateway unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.BookingID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
