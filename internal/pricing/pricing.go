// Package pricing вычисляет стоимость пропуска по тарифной таблице.
// Вся денежная арифметика на decimal - без дрейфа округления float64.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// vatRate фиксированная ставка НДС 20%
var vatRate = decimal.New(20, -2)

// Rates тарифная таблица (EUR, до налога)
type Rates struct {
	// Day цена одного места за один выбранный день
	Day decimal.Decimal
	// Week цена одного места за недельный пропуск (5 рабочих дней одной единицей)
	Week decimal.Decimal
	// Month цена одного места за месячный пропуск (фиксированная, recurring)
	Month decimal.Decimal
}

// DefaultRates тарифы по умолчанию, переопределяются в config.toml
func DefaultRates() Rates {
	return Rates{
		Day:   decimal.NewFromInt(30),
		Week:  decimal.NewFromInt(120),
		Month: decimal.NewFromInt(450),
	}
}

// ParseRates разбирает тарифы из строковых значений конфигурации.
// Пустые значения заменяются тарифами по умолчанию.
func ParseRates(day, week, month string) (Rates, error) {
	rates := DefaultRates()

	if err := parseRate(&rates.Day, day); err != nil {
		return Rates{}, fmt.Errorf("pricing: invalid day rate %q: %w", day, err)
	}
	if err := parseRate(&rates.Week, week); err != nil {
		return Rates{}, fmt.Errorf("pricing: invalid week rate %q: %w", week, err)
	}
	if err := parseRate(&rates.Month, month); err != nil {
		return Rates{}, fmt.Errorf("pricing: invalid month rate %q: %w", month, err)
	}

	return rates, nil
}

func parseRate(dst *decimal.Decimal, raw string) error {
	if raw == "" {
		return nil
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return fmt.Errorf("rate must not be negative")
	}

	*dst = rate
	return nil
}

// Quote разбивка стоимости
type Quote struct {
	PreTax decimal.Decimal
	Tax    decimal.Decimal
	Total  decimal.Decimal
}

// ForSelection вычисляет стоимость выбора.
//
// day:   Day * seats * unitCount (unitCount = число выбранных дней)
// week:  Week * seats (пятидневный набор оценивается как одна единица)
// month: Month * seats
//
// unitCount игнорируется (как 1) для week/month. Tax = PreTax * 0.20,
// Total = PreTax + Tax, округление до 2 знаков.
//
// Функция тотальна на валидированном входе: отрицательные или нулевые
// seats обязан отклонить вызывающий до обращения сюда.
func (r Rates) ForSelection(passType domain.PassType, seats, unitCount int) Quote {
	seatsDec := decimal.NewFromInt(int64(seats))

	var preTax decimal.Decimal
	switch passType {
	case domain.PassTypeDay:
		preTax = r.Day.Mul(seatsDec).Mul(decimal.NewFromInt(int64(unitCount)))
	case domain.PassTypeWeek:
		preTax = r.Week.Mul(seatsDec)
	case domain.PassTypeMonth:
		preTax = r.Month.Mul(seatsDec)
	}

	preTax = preTax.Round(2)
	tax := preTax.Mul(vatRate).Round(2)

	return Quote{
		PreTax: preTax,
		Tax:    tax,
		Total:  preTax.Add(tax),
	}
}

// TotalCents возвращает итоговую сумму в центах для платежного шлюза
func (q Quote) TotalCents() int64 {
	return q.Total.Mul(decimal.NewFromInt(100)).IntPart()
}
