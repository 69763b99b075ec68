package quote_pass

import (
	sel "github.com/m04kA/CWS-PassService/internal/selection"
	quotePass "github.com/m04kA/CWS-PassService/internal/usecase/quote_pass"
)

// QuoteRequest HTTP request model: текущий выбор из диалога бронирования
type QuoteRequest struct {
	Selection sel.Snapshot `json:"selection"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PassType  string `json:"passType"`
	Seats     int    `json:"seats"`
	UnitCount int    `json:"unitCount"`
	PreTax    string `json:"preTax"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePass.Request {
	return &quotePass.Request{Selection: r.Selection}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePass.Response) *QuoteResponse {
	return &QuoteResponse{
		PassType:  resp.PassType,
		Seats:     resp.Seats,
		UnitCount: resp.UnitCount,
		PreTax:    resp.PreTax,
		Tax:       resp.Tax,
		Total:     resp.Total,
	}
}
