package v1

import "github.com/shenikar/community_safety_system/internal/models"

// DTOToIncidentModel преобразует DTO отчета в доменную модель.
// Вызывается после валидации: указатели координат уже не nil.
func DTOToIncidentModel(dto ReportIncidentRequest) *models.Incident {
	return &models.Incident{
		ReporterID:  dto.ReporterID,
		Type:        models.IncidentType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		Title:       dto.Title,
		Description: dto.Description,
		Address:     dto.Address,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		ReporterID:  model.ReporterID,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Title:       model.Title,
		Description: model.Description,
		Address:     model.Address,
		Status:      string(model.Status),
		Upvotes:     model.Upvotes,
		Downvotes:   model.Downvotes,
		Verified:    model.Verified,
		ReportedAt:  model.ReportedAt,
		ResolvedAt:  model.ResolvedAt,
	}
}

// DetailToIncidentResponse добавляет к ответу голос запросившего пользователя
func DetailToIncidentResponse(detail *models.IncidentDetail) *IncidentResponse {
	resp := ModelToIncidentResponse(detail.Incident)
	if detail.UserVote != nil {
		resp.UserVote = string(*detail.UserVote)
	}
	return resp
}

// NearbyToIncidentResponses преобразует результаты поиска поблизости с дистанцией
func NearbyToIncidentResponses(nearby []*models.NearbyIncident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(nearby))
	for i, n := range nearby {
		resp := ModelToIncidentResponse(n.Incident)
		d := n.DistanceMeters
		resp.Distance = &d
		responses[i] = resp
	}
	return responses
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
