package response

import "eventos_api/internal/domain/entities"

type EventCatalogResponse struct {
	Categories []entities.EventCategory `json:"categories"`
	Events     []entities.EventType     `json:"events"`
}

type ServiceCatalogResponse struct {
	Categories []entities.ServiceCategory `json:"categories"`
}

type PackagedPlansResponse struct {
	Plans            []entities.PackagedPlan    `json:"plans"`
	IncludedServices []entities.IncludedService `json:"included_services"`
}

type ThemesResponse struct {
	Themes []entities.Theme `json:"themes"`
}

type RecommendationResponse struct {
	Events []entities.EventType `json:"events"`
}
