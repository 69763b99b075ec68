package payment_callback

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	confirmPayment "github.com/m04kA/CWS-PassService/internal/usecase/confirm_payment"
)

const (
	msgMissingToken    = "отсутствует токен платежной сессии"
	msgInvalidOutcome  = "некорректный результат оплаты"
	msgBookingNotFound = "бронирование не найдено"
	msgAlreadyResolved = "оплата уже обработана"
	msgSnapshotGone    = "выбор уже восстановлен ранее"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{outcome}
// Платежный шлюз редиректит сюда после завершения checkout-сессии;
// токен приходит в query параметре token.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	outcome := vars["outcome"]

	token := r.URL.Query().Get("token")
	if token == "" {
		h.logger.Warn("GET /payments/{outcome} - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		SelectionToken: token,
		Outcome:        confirmPayment.Outcome(outcome),
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("GET /payments/{outcome} - Invalid input: outcome=%s", outcome)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("GET /payments/{outcome} - Booking not found: token=%s", token)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrAlreadyResolved):
			h.logger.Warn("GET /payments/{outcome} - Already resolved: token=%s", token)
			handlers.RespondConflict(w, msgAlreadyResolved)

		case errors.Is(err, confirmPayment.ErrSnapshotGone):
			h.logger.Warn("GET /payments/{outcome} - Snapshot already consumed: token=%s", token)
			handlers.RespondConflict(w, msgSnapshotGone)

		default:
			h.logger.Error("GET /payments/{outcome} - Failed to process callback: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/{outcome} - Callback processed: booking_id=%d, status=%s",
		result.BookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
