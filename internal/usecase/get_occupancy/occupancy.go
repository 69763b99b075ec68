package get_occupancy

import (
	"math"
	"sort"

	"github.com/m04kA/CWS-PassService/internal/domain"
)

// siteTotals агрегат одной площадки: вместимость и занятые место-дни
type siteTotals struct {
	site     domain.Site
	capacity int
	seatDays int
}

// aggregateSites агрегирует загрузку по площадкам.
// Загрузка = занятые место-дни / (вместимость x рабочих дней окна),
// в процентах с округлением, обрезка в [0, 100]. Площадки без
// вместимости исключаются. Сортировка по убыванию загрузки,
// при равенстве по названию.
func aggregateSites(resources []*domain.Resource, booked []domain.ResourceBooking, periodDays int) []domain.SiteOccupancy {
	totals := collectTotals(resources, booked)

	result := make([]domain.SiteOccupancy, 0, len(totals))
	for _, t := range totals {
		if t.capacity <= 0 {
			continue
		}
		result = append(result, domain.SiteOccupancy{
			SiteID:           t.site.ID,
			SiteName:         t.site.Name,
			OccupancyPercent: occupancyPercent(t.seatDays, t.capacity, periodDays),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].OccupancyPercent != result[j].OccupancyPercent {
			return result[i].OccupancyPercent > result[j].OccupancyPercent
		}
		return result[i].SiteName < result[j].SiteName
	})

	return result
}

// globalOccupancy считает загрузку всей сети одним числом
func globalOccupancy(resources []*domain.Resource, booked []domain.ResourceBooking, periodDays int) int {
	totalCapacity := 0
	for _, r := range resources {
		totalCapacity += r.Capacity
	}
	if totalCapacity <= 0 {
		return 0
	}

	totalSeatDays := 0
	for _, b := range booked {
		totalSeatDays += b.Seats
	}

	return occupancyPercent(totalSeatDays, totalCapacity, periodDays)
}

func collectTotals(resources []*domain.Resource, booked []domain.ResourceBooking) map[int64]*siteTotals {
	resourceSite := make(map[int64]int64, len(resources))
	totals := make(map[int64]*siteTotals)

	for _, r := range resources {
		resourceSite[r.ID] = r.SiteID
		t, ok := totals[r.SiteID]
		if !ok {
			t = &siteTotals{site: domain.Site{ID: r.SiteID, Name: r.SiteName}}
			totals[r.SiteID] = t
		}
		t.capacity += r.Capacity
	}

	for _, b := range booked {
		siteID, ok := resourceSite[b.ResourceID]
		if !ok {
			continue
		}
		totals[siteID].seatDays += b.Seats
	}

	return totals
}

// occupancyPercent процент загрузки с округлением и обрезкой в [0, 100]
func occupancyPercent(seatDays, capacity, periodDays int) int {
	if capacity <= 0 || periodDays <= 0 {
		return 0
	}

	percent := int(math.Round(100 * float64(seatDays) / float64(capacity*periodDays)))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
