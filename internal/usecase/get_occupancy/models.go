package get_occupancy

import (
	"github.com/m04kA/CWS-PassService/internal/domain"
)

// Request модель запроса отчета о загрузке
type Request struct {
	Window domain.OccupancyWindow // Окно отчета: today, week, month
}

// Response модель ответа с загрузкой по площадкам
type Response struct {
	Window     string // Запрошенное окно
	PeriodDays int    // Рабочих дней в окне (фиксированная аппроксимация)

	// Площадки по убыванию загрузки; площадки без вместимости исключены
	Sites []domain.SiteOccupancy

	// Суммарная загрузка сети; всегда считается по недельному окну
	GlobalOccupancyPercent int
}
