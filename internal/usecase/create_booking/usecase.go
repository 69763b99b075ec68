package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-PassService/internal/calendar"
	"github.com/m04kA/CWS-PassService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-PassService/internal/infra/storage/booking"
	"github.com/m04kA/CWS-PassService/internal/integrations/payments"
	"github.com/m04kA/CWS-PassService/internal/pricing"
	sel "github.com/m04kA/CWS-PassService/internal/selection"
	"github.com/m04kA/CWS-PassService/pkg/types"
)

// UseCase use case отправки выбора в оплату.
// Снимок выбора приходит от клиента и не считается доверенным: состав дат,
// отсечка 18:00 и календарь рабочих дней перепроверяются на сервере
// перед созданием checkout-сессии.
type UseCase struct {
	bookingRepo   BookingRepository
	selectionRepo SelectionRepository
	payments      PaymentsClient
	txManager     TransactionManager
	rates         pricing.Rates
	currency      string
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	selectionRepo SelectionRepository,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	rates pricing.Rates,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		selectionRepo: selectionRepo,
		payments:      paymentsClient,
		txManager:     txManager,
		rates:         rates,
		currency:      currency,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отправки выбора в оплату.
// Снимок сохраняется и бронирование создается в одной сериализуемой
// транзакции; до нее создается checkout-сессия платежного шлюза.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, passType=%s",
		req.UserID, req.ResourceID, req.Selection.PassType)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	// 2. Восстанавливаем выбор из снимка
	selection, err := sel.FromSnapshot(req.Selection)
	if err != nil {
		uc.logger.Warn("CreateBooking: snapshot rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	if err := selection.CanSubmit(); err != nil {
		uc.logger.Warn("CreateBooking: selection not submittable: %v", err)
		if errors.Is(err, sel.ErrCGVNotAccepted) {
			return nil, ErrCGVNotAccepted
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	// 3. Перепроверяем даты: состав, отсечка, рабочие дни
	now := uc.timeProvider.Now()
	if err := uc.validateDates(selection, now); err != nil {
		return nil, err
	}

	// 4. Фиксируем цену
	quote := uc.rates.ForSelection(selection.PassType, selection.Seats, selection.UnitCount())

	// 5. Генерируем токен снимка и создаем checkout-сессию.
	// Сессия создается до транзакции: при откате она останется неоплаченной
	// и истечет на стороне шлюза сама.
	token := uuid.NewString()

	session, err := uc.payments.CreateCheckoutSession(ctx, &payments.CheckoutRequest{
		Reference: token,
		Description: fmt.Sprintf("Coworking %s pass, %d seat(s), %d day(s)",
			selection.PassType, selection.Seats, len(selection.Dates)),
		AmountCents: quote.TotalCents(),
		Currency:    uc.currency,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create checkout session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	var result *domain.PassBooking
	var siteName string

	// 6. Проверка мест и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Ресурс должен существовать и принадлежать выбранной площадке
		resource, err := uc.bookingRepo.GetResource(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}
		if resource.SiteID != *selection.SiteID {
			uc.logger.Warn("CreateBooking: resource id=%d belongs to site=%d, selection has site=%d",
				resource.ID, resource.SiteID, *selection.SiteID)
			return fmt.Errorf("%w: resource is not at the selected site", ErrInvalidSelection)
		}

		// 6.2. Свободные места на каждый выбранный день
		maxBooked, err := uc.bookingRepo.MaxBookedSeatsPerDay(txCtx, resource.ID, selection.Dates)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count booked seats for resource id=%d: %v", resource.ID, err)
			return fmt.Errorf("%w: failed to count booked seats: %v", ErrInternal, err)
		}
		if maxBooked+selection.Seats > resource.Capacity {
			uc.logger.Warn("CreateBooking: resource id=%d full: booked=%d, requested=%d, capacity=%d",
				resource.ID, maxBooked, selection.Seats, resource.Capacity)
			return ErrResourceFull
		}

		// 6.3. Сохраняем снимок под токеном для возврата по callback отмены
		if err := uc.selectionRepo.Save(txCtx, token, req.Selection); err != nil {
			uc.logger.Error("CreateBooking: failed to save selection snapshot: %v", err)
			return fmt.Errorf("%w: failed to save selection snapshot: %v", ErrInternal, err)
		}

		// 6.4. Создаем бронирование в ожидании оплаты
		booking := &domain.PassBooking{
			UserID:            req.UserID,
			SiteID:            resource.SiteID,
			ResourceID:        resource.ID,
			PassType:          selection.PassType,
			Seats:             selection.Seats,
			Dates:             selection.Dates,
			PreTax:            quote.PreTax,
			Tax:               quote.Tax,
			Total:             quote.Total,
			Status:            domain.BookingStatusPendingPayment,
			SelectionToken:    token,
			CheckoutSessionID: &session.ID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		siteName = resource.SiteName
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created, total=%s, awaiting payment (session=%s)",
		result.ID, result.Total.StringFixed(2), session.ID)

	return toResponse(result, siteName, session.URL), nil
}

// validateDates перепроверяет выбранные даты против календаря и отсечки.
// Для якорных типов пропуска дополнительно проверяется длина серии.
func (uc *UseCase) validateDates(selection *sel.Selection, now time.Time) error {
	if selection.PassType.IsAnchored() && len(selection.Dates) != selection.PassType.RunLength() {
		uc.logger.Warn("CreateBooking: %s pass with %d dates rejected",
			selection.PassType, len(selection.Dates))
		return fmt.Errorf("%w: %s pass must cover %d business days",
			ErrInvalidSelection, selection.PassType, selection.PassType.RunLength())
	}

	years := make(map[int]struct{}, 2)
	for _, d := range selection.Dates {
		years[d.Year()] = struct{}{}
	}
	yearList := make([]int, 0, len(years))
	for y := range years {
		yearList = append(yearList, y)
	}
	holidays := calendar.Holidays(yearList...)

	minDate := sel.MinBookableDate(now)
	for _, d := range selection.Dates {
		day := calendar.Normalize(d)
		if day.Before(minDate) || !calendar.IsBusinessDay(day, holidays) {
			uc.logger.Warn("CreateBooking: date %s is no longer bookable", day.Format(domain.DateFormat))
			return fmt.Errorf("%w: %s", ErrDateNotBookable, day.Format(domain.DateFormat))
		}
	}

	return nil
}

func toResponse(b *domain.PassBooking, siteName, checkoutURL string) *Response {
	dates := make([]types.DateString, len(b.Dates))
	for i, d := range b.Dates {
		dates[i] = types.NewDateString(d)
	}

	return &Response{
		BookingID:      b.ID,
		UserID:         b.UserID,
		SiteID:         b.SiteID,
		SiteName:       siteName,
		PassType:       string(b.PassType),
		Seats:          b.Seats,
		Dates:          dates,
		PreTax:         b.PreTax.StringFixed(2),
		Tax:            b.Tax.StringFixed(2),
		Total:          b.Total.StringFixed(2),
		Status:         string(b.Status),
		SelectionToken: b.SelectionToken,
		CheckoutURL:    checkoutURL,
		CreatedAt:      b.CreatedAt,
	}
}
