package add_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	addUser "github.com/m04kA/CWS-PassService/internal/usecase/add_user"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCompanyID   = "некорректный ID компании"
	msgQuotaExceeded      = "все места по контрактам компании заняты"
)

type Handler struct {
	useCase AddUserUseCase
	logger  Logger
}

func NewHandler(useCase AddUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{companyId}/users - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req AddUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{companyId}/users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(companyID))
	if err != nil {
		switch {
		case errors.Is(err, addUser.ErrQuotaExceeded):
			h.logger.Warn("POST /companies/{companyId}/users - Quota exceeded: company_id=%d", companyID)
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, addUser.ErrInvalidInput):
			h.logger.Warn("POST /companies/{companyId}/users - Invalid input: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /companies/{companyId}/users - Failed to add user: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{companyId}/users - User added: user_id=%d, company_id=%d (%d/%d seats)",
		result.UserID, companyID, result.ActiveUsers, result.TotalSeats)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
