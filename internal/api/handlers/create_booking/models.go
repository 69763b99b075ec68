package create_booking

import (
	"time"

	sel "github.com/m04kA/CWS-PassService/internal/selection"
	createBooking "github.com/m04kA/CWS-PassService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID int64        `json:"resourceId"`
	Selection  sel.Snapshot `json:"selection"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"userId"`
	SiteID   int64    `json:"siteId"`
	SiteName string   `json:"siteName"`
	PassType string   `json:"passType"`
	Seats    int      `json:"seats"`
	Dates    []string `json:"dates"`

	PreTax string `json:"preTax"`
	Tax    string `json:"tax"`
	Total  string `json:"total"`

	Status string `json:"status"`

	// Ссылка для редиректа на страницу оплаты
	CheckoutURL string `json:"checkoutUrl"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		Selection:  r.Selection,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.String()
	}

	return &BookingResponse{
		ID:          resp.BookingID,
		UserID:      resp.UserID,
		SiteID:      resp.SiteID,
		SiteName:    resp.SiteName,
		PassType:    resp.PassType,
		Seats:       resp.Seats,
		Dates:       dates,
		PreTax:      resp.PreTax,
		Tax:         resp.Tax,
		Total:       resp.Total,
		Status:      resp.Status,
		CheckoutURL: resp.CheckoutURL,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
