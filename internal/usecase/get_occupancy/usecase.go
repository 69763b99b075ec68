package get_occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CWS-PassService/internal/calendar"
	"github.com/m04kA/CWS-PassService/internal/domain"
)

// UseCase use case отчета о загрузке площадок.
// Окно отчета покрывает фиксированное число рабочих дней (1/5/22),
// занятость берется из дат активных бронирований. Чисто читающий
// usecase, транзакция не нужна.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит отчет о загрузке по площадкам и сети в целом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancy: window=%s", req.Window)

	if !req.Window.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWindow, req.Window)
	}

	now := uc.timeProvider.Now()

	// 1. Все ресурсы с вместимостью
	resources, err := uc.bookingRepo.ListResources(ctx)
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to list resources: %v", err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	// 2. Занятые место-дни в запрошенном окне
	booked, err := uc.listWindow(ctx, now, req.Window.PeriodDays())
	if err != nil {
		return nil, err
	}

	// 3. Суммарная загрузка сети всегда считается по недельному окну
	globalBooked := booked
	if req.Window != domain.WindowWeek {
		globalBooked, err = uc.listWindow(ctx, now, domain.PeriodDaysWeek)
		if err != nil {
			return nil, err
		}
	}

	resp := &Response{
		Window:                 string(req.Window),
		PeriodDays:             req.Window.PeriodDays(),
		Sites:                  aggregateSites(resources, booked, req.Window.PeriodDays()),
		GlobalOccupancyPercent: globalOccupancy(resources, globalBooked, domain.PeriodDaysWeek),
	}

	uc.logger.Info("GetOccupancy: window=%s, sites=%d, global=%d%%",
		req.Window, len(resp.Sites), resp.GlobalOccupancyPercent)

	return resp, nil
}

// listWindow получает занятые место-дни на ближайшие periodDays рабочих дней
func (uc *UseCase) listWindow(ctx context.Context, now time.Time, periodDays int) ([]domain.ResourceBooking, error) {
	from, to := windowRange(now, periodDays)

	booked, err := uc.bookingRepo.ListBookedSeats(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to list booked seats: %v", err)
		return nil, fmt.Errorf("%w: failed to list booked seats: %v", ErrInternal, err)
	}

	return booked, nil
}

// windowRange границы окна: periodDays рабочих дней начиная с сегодня
// (или ближайшего рабочего дня)
func windowRange(now time.Time, periodDays int) (time.Time, time.Time) {
	start := calendar.Normalize(now)
	holidays := calendar.Holidays(start.Year(), start.Year()+1)

	days := calendar.NextBusinessDays(start, periodDays, holidays)
	return days[0], days[len(days)-1]
}
