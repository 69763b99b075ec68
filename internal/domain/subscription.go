package domain

import "time"

// SubscriptionStatus is the derived lifecycle status of a contract.
// It is never persisted - recomputed from (endDate, today) on every read.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionExpiring SubscriptionStatus = "expiring"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// ResolveSubscriptionStatus классифицирует контракт по дате окончания:
//   - endDate == nil              -> active (бессрочный)
//   - endDate <= today            -> inactive
//   - today < endDate <= today+30 -> expiring
//   - endDate > today+30          -> active
//
// Сравнение с точностью до дня; граница в 30 дней и нестрогие неравенства
// фиксированы - от них зависит рассылка напоминаний о продлении.
func ResolveSubscriptionStatus(endDate *time.Time, today time.Time) SubscriptionStatus {
	if endDate == nil {
		return SubscriptionActive
	}

	end := truncateToDay(*endDate)
	day := truncateToDay(today)

	if !end.After(day) {
		return SubscriptionInactive
	}

	horizon := day.AddDate(0, 0, ExpiringHorizonDays)
	if !end.After(horizon) {
		return SubscriptionExpiring
	}

	return SubscriptionActive
}

// truncateToDay обнуляет время, оставляя только дату.
// Обе стороны сравнения приводятся к UTC, чтобы даты из разных
// часовых поясов сравнивались как календарные дни.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
