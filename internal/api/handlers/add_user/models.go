package add_user

import (
	addUser "github.com/m04kA/CWS-PassService/internal/usecase/add_user"
)

// AddUserRequest HTTP request model
type AddUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AddUserResponse HTTP response model
type AddUserResponse struct {
	UserID    int64 `json:"userId"`
	CompanyID int64 `json:"companyId"`

	// Квота компании после добавления
	ActiveUsers int `json:"activeUsers"`
	TotalSeats  int `json:"totalSeats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddUserRequest) ToUseCaseRequest(companyID int64) *addUser.Request {
	return &addUser.Request{
		CompanyID: companyID,
		Email:     r.Email,
		FullName:  r.FullName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addUser.Response) *AddUserResponse {
	return &AddUserResponse{
		UserID:      resp.UserID,
		CompanyID:   resp.CompanyID,
		ActiveUsers: resp.ActiveUsers,
		TotalSeats:  resp.TotalSeats,
	}
}
