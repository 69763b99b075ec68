package quote_pass

import (
	sel "github.com/m04kA/CWS-PassService/internal/selection"
)

// Request модель запроса расчета цены выбора
type Request struct {
	Selection sel.Snapshot
}

// Response модель ответа с разбивкой цены
type Response struct {
	PassType  string
	Seats     int
	UnitCount int // Тарифицируемых единиц: дней для day, 1 для week/month

	PreTax string
	Tax    string
	Total  string
}
