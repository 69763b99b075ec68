package confirm_payment

import (
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// Outcome результат платежной сессии из callback шлюза
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeCancel  Outcome = "cancel"
)

// IsValid проверяет, что результат известен
func (o Outcome) IsValid() bool {
	return o == OutcomeSuccess || o == OutcomeCancel
}

// Request модель запроса обработки callback платежного шлюза
type Request struct {
	SelectionToken string  // Токен из client_reference_id сессии
	Outcome        Outcome // Результат оплаты
}

// Response модель ответа обработки callback
type Response struct {
	BookingID int64
	Status    string

	// Снимок выбора для восстановления диалога; заполняется только
	// при отмене оплаты, ровно один раз на снимок
	RestoredSelection *sel.Snapshot
}
