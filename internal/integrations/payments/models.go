package payments

// CheckoutRequest параметры создания checkout-сессии
type CheckoutRequest struct {
	// Reference токен сохраненного выбора; возвращается в callback
	Reference string
	// Description назначение платежа, показывается на странице оплаты
	Description string
	// AmountCents итоговая сумма в центах (с НДС)
	AmountCents int64
	// Currency валюта ISO 4217 в нижнем регистре (например, "eur")
	Currency string
}

// CheckoutSession созданная сессия платежного шлюза
type CheckoutSession struct {
	ID  string
	URL string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
