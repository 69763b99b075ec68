package payment_callback

import (
	sel "github.com/m04kA/CWS-PassService/internal/selection"
	confirmPayment "github.com/m04kA/CWS-PassService/internal/usecase/confirm_payment"
)

// CallbackResponse HTTP response model
type CallbackResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`

	// Снимок выбора для восстановления диалога; только при отмене оплаты
	RestoredSelection *sel.Snapshot `json:"restoredSelection,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *CallbackResponse {
	return &CallbackResponse{
		BookingID:         resp.BookingID,
		Status:            resp.Status,
		RestoredSelection: resp.RestoredSelection,
	}
}
