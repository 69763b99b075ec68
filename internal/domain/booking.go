package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a pass booking
type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusExpired        BookingStatus = "expired"
)

// PassBooking represents a purchased (or in-payment) coworking pass
type PassBooking struct {
	ID         int64
	UserID     int64
	SiteID     int64
	ResourceID int64
	PassType   PassType
	Seats      int

	// Конкретные рабочие дни, покрытые пропуском (отсортированы по возрастанию)
	Dates []time.Time

	// Denormalized price breakdown at purchase time
	PreTax decimal.Decimal
	Tax    decimal.Decimal
	Total  decimal.Decimal

	Status BookingStatus

	// Токен сохраненного выбора для восстановления после отмены оплаты
	SelectionToken string
	// ID checkout-сессии платежного шлюза
	CheckoutSessionID *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity
func (b *PassBooking) IsActive() bool {
	return b.Status == BookingStatusPendingPayment || b.Status == BookingStatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *PassBooking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// AwaitsPayment returns true while the payment gateway round trip is in flight
func (b *PassBooking) AwaitsPayment() bool {
	return b.Status == BookingStatusPendingPayment
}
