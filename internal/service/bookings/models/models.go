package models

import (
	"errors"
	"time"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования пропуска
type BookingResponse struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"userId"`
	SiteID     int64    `json:"siteId"`
	ResourceID int64    `json:"resourceId"`
	PassType   string   `json:"passType"`
	Seats      int      `json:"seats"`
	Dates      []string `json:"dates"` // "2025-10-15", по возрастанию

	// Разбивка цены, зафиксированная при покупке
	PreTax string `json:"preTax"`
	Tax    string `json:"tax"`
	Total  string `json:"total"`

	Status      string  `json:"status"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.BookingStatusPendingPayment,
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
		domain.BookingStatusExpired:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.PassBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	dates := make([]string, len(b.Dates))
	for i, d := range b.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	resp := &BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		SiteID:     b.SiteID,
		ResourceID: b.ResourceID,
		PassType:   string(b.PassType),
		Seats:      b.Seats,
		Dates:      dates,
		PreTax:     b.PreTax.StringFixed(2),
		Tax:        b.Tax.StringFixed(2),
		Total:      b.Total.StringFixed(2),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.PassBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
