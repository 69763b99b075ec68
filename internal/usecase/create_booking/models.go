package create_booking

import (
	"time"

	sel "github.com/m04kA/CWS-PassService/internal/selection"
	"github.com/m04kA/CWS-PassService/pkg/types"
)

// Request модель запроса на отправку выбора в оплату
type Request struct {
	UserID     int64        // ID пользователя
	ResourceID int64        // Ресурс (стол, офис, переговорная)
	Selection  sel.Snapshot // Снимок выбора из диалога бронирования
}

// Response модель ответа с созданным бронированием и ссылкой на оплату
type Response struct {
	BookingID int64
	UserID    int64
	SiteID    int64
	SiteName  string
	PassType  string
	Seats     int
	Dates     []types.DateString

	// Разбивка цены, зафиксированная на момент отправки
	PreTax string
	Tax    string
	Total  string

	Status string

	// Токен снимка выбора; возвращается в callback платежного шлюза
	SelectionToken string
	// Ссылка на страницу оплаты для редиректа клиента
	CheckoutURL string

	CreatedAt time.Time
}
