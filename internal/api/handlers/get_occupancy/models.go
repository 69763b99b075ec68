package get_occupancy

import (
	getOccupancy "github.com/m04kA/CWS-PassService/internal/usecase/get_occupancy"
)

// SiteOccupancyResponse загрузка одной площадки
type SiteOccupancyResponse struct {
	SiteID           int64  `json:"siteId"`
	SiteName         string `json:"siteName"`
	OccupancyPercent int    `json:"occupancyPercent"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Window     string `json:"window"`
	PeriodDays int    `json:"periodDays"`

	Sites []SiteOccupancyResponse `json:"sites"`

	GlobalOccupancyPercent int `json:"globalOccupancyPercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	sites := make([]SiteOccupancyResponse, 0, len(resp.Sites))
	for _, s := range resp.Sites {
		sites = append(sites, SiteOccupancyResponse{
			SiteID:           s.SiteID,
			SiteName:         s.SiteName,
			OccupancyPercent: s.OccupancyPercent,
		})
	}

	return &OccupancyResponse{
		Window:                 resp.Window,
		PeriodDays:             resp.PeriodDays,
		Sites:                  sites,
		GlobalOccupancyPercent: resp.GlobalOccupancyPercent,
	}
}
