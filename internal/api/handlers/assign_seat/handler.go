package assign_seat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-PassService/internal/api/handlers"
	assignSeat "github.com/m04kA/CWS-PassService/internal/usecase/assign_seat"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgContractNotFound   = "контракт не найден"
	msgCrossCompany       = "контракт принадлежит другой компании"
	msgContractFull       = "все места контракта заняты"
)

type Handler struct {
	useCase AssignSeatUseCase
	logger  Logger
}

func NewHandler(useCase AssignSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{userId}/seat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /users/{userId}/seat - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req AssignSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{userId}/seat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, assignSeat.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{userId}/seat - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, assignSeat.ErrContractNotFound):
			h.logger.Warn("PATCH /users/{userId}/seat - Contract not found: user_id=%d, contract_id=%v",
				userID, req.ContractID)
			handlers.RespondNotFound(w, msgContractNotFound)

		case errors.Is(err, assignSeat.ErrCrossCompanyAssignment):
			h.logger.Warn("PATCH /users/{userId}/seat - Cross-company assignment: user_id=%d, contract_id=%v",
				userID, req.ContractID)
			handlers.RespondForbidden(w, msgCrossCompany)

		case errors.Is(err, assignSeat.ErrContractFull):
			h.logger.Warn("PATCH /users/{userId}/seat - Contract full: user_id=%d, contract_id=%v",
				userID, req.ContractID)
			handlers.RespondConflict(w, msgContractFull)

		case errors.Is(err, assignSeat.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{userId}/seat - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /users/{userId}/seat - Failed to assign seat: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{userId}/seat - Seat assignment updated: user_id=%d, contract_id=%v",
		result.UserID, result.ContractID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
