package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-PassService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/booking"
	"github.com/m04kA/CWS-PassService/internal/service/bookings/models"
)

// Service сервис чтения бронирований пропусков
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	if id <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по инициативе пользователя.
// Отменить можно только собственное активное бронирование.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d for user=%d", id, userID)

	if id <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%d is not active (status=%s)", id, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.BookingStatusCancelled

	s.logger.Info("Cancel: booking id=%d cancelled by user=%d", id, userID)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// опционально отфильтрованную по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}
