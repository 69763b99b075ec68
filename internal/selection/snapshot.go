package selection

import (
	"fmt"
	"time"

	"github.com/m04kA/CWS-PassService/internal/calendar"
	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/pkg/types"
)

// Snapshot плоский сериализуемый снимок выбора.
// Сохраняется перед редиректом на платежный шлюз и восстанавливается
// ровно один раз при возврате по callback отмены. Даты в ISO 8601 -
// round-trip без потерь на дневной гранулярности.
type Snapshot struct {
	PassType    string             `json:"passType"`
	Seats       int                `json:"seats"`
	Dates       []types.DateString `json:"dates"`
	CGVAccepted bool               `json:"cgvAccepted"`
	SiteID      *int64             `json:"siteId,omitempty"`
}

// Snapshot сериализует текущее состояние выбора
func (s *Selection) Snapshot() Snapshot {
	dates := make([]types.DateString, len(s.Dates))
	for i, d := range s.Dates {
		dates[i] = types.NewDateString(d)
	}

	return Snapshot{
		PassType:    string(s.PassType),
		Seats:       s.Seats,
		Dates:       dates,
		CGVAccepted: s.CGVAccepted,
		SiteID:      s.SiteID,
	}
}

// FromSnapshot восстанавливает выбор из снимка.
// PassType, Seats, Dates и CGVAccepted воспроизводятся ровно как сериализованы.
func FromSnapshot(snap Snapshot) (*Selection, error) {
	passType := domain.PassType(snap.PassType)
	if !passType.IsValid() {
		return nil, fmt.Errorf("%w: unknown pass type %q", ErrInvalidSnapshot, snap.PassType)
	}

	if snap.Seats < domain.MinSeats || snap.Seats > domain.MaxSeats {
		return nil, fmt.Errorf("%w: seats %d out of range", ErrInvalidSnapshot, snap.Seats)
	}

	sel := &Selection{
		PassType:    passType,
		Seats:       snap.Seats,
		Dates:       make([]time.Time, 0, len(snap.Dates)),
		CGVAccepted: snap.CGVAccepted,
		SiteID:      snap.SiteID,
	}

	for i, ds := range snap.Dates {
		d, err := ds.Time()
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSnapshot, ds)
		}
		// Даты - упорядоченное множество: строго по возрастанию, без повторов
		if i > 0 && !sel.Dates[i-1].Before(d) {
			return nil, fmt.Errorf("%w: dates must be distinct and ascending", ErrInvalidSnapshot)
		}
		sel.Dates = append(sel.Dates, d)
	}

	if passType.IsAnchored() && len(sel.Dates) > 0 {
		if err := validateAnchoredRun(passType, sel.Dates); err != nil {
			return nil, err
		}
	}

	return sel, nil
}

// validateAnchoredRun проверяет, что даты якорного пропуска - ровно серия
// рабочих дней от якоря, а не произвольный набор
func validateAnchoredRun(passType domain.PassType, dates []time.Time) error {
	first := dates[0]
	last := dates[len(dates)-1]
	holidays := calendar.Holidays(first.Year(), last.Year())

	expected := calendar.NextBusinessDays(first, passType.RunLength(), holidays)
	if len(dates) != len(expected) {
		return fmt.Errorf("%w: %s pass must cover %d business days",
			ErrInvalidSnapshot, passType, passType.RunLength())
	}
	for i, d := range dates {
		if !d.Equal(expected[i]) {
			return fmt.Errorf("%w: dates do not form a business-day run from %s",
				ErrInvalidSnapshot, first.Format(domain.DateFormat))
		}
	}

	return nil
}
