package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/community_safety_system/internal/events"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/lifecycle"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Окна выборки кандидатов для запросов близости
const (
	nearbyWindowDays  = 7
	heatmapWindowDays = 30
	listMaxResults    = 500
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов.
// VoteOnIncident и SetStatus выполняют чтение-изменение-запись атомарно
// (транзакция с блокировкой строки), чтобы конкурентные голоса не теряли
// обновления счетчиков.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	FindInBox(ctx context.Context, box geo.BoundingBox, filter models.IncidentFilter) ([]*models.Incident, error)
	List(ctx context.Context, filter models.ListFilter) ([]*models.Incident, error)
	VoteOnIncident(ctx context.Context, id uuid.UUID, voterID string, kind models.VoteKind) (*models.Incident, lifecycle.Promotion, error)
	GetVote(ctx context.Context, id uuid.UUID, voterID string) (models.VoteKind, bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.Status, resolvedAt *time.Time) (*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// PatternRepository определяет контракт хранилища исторических паттернов.
// Record выполняет атомарный upsert с потоковым пересчетом среднего.
type PatternRepository interface {
	Record(ctx context.Context, p geo.Point, severityWeight float64, hour, dayOfWeek int) error
	Lookup(ctx context.Context, p geo.Point, hour, dayOfWeek int) (*models.PatternStats, error)
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID, callerID string) (*models.IncidentDetail, error)
	Nearby(ctx context.Context, center geo.Point, radiusMeters float64, status string) ([]*models.NearbyIncident, error)
	ListIncidents(ctx context.Context, filter models.ListFilter) ([]*models.Incident, error)
	Vote(ctx context.Context, id uuid.UUID, voterID string, kind models.VoteKind) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, requesterID string, status models.Status) (*models.Incident, error)
	Heatmap(ctx context.Context, center geo.Point, radiusMeters float64) ([]models.HeatmapPoint, error)
}

type incidentService struct {
	repo      IncidentRepository
	patterns  PatternRepository
	publisher events.Publisher
	logger    *logrus.Logger
	clock     clockwork.Clock
	weights   models.WeightConfig
	metrics   *observability.Metrics
}

func NewIncidentService(
	repo IncidentRepository,
	patterns PatternRepository,
	publisher events.Publisher,
	logger *logrus.Logger,
	clock clockwork.Clock,
	weights models.WeightConfig,
	metrics *observability.Metrics,
) IncidentService {
	return &incidentService{
		repo:      repo,
		patterns:  patterns,
		publisher: publisher,
		logger:    logger,
		clock:     clock,
		weights:   weights,
		metrics:   metrics,
	}
}

// ReportIncident создает инцидент и обновляет исторический паттерн ячейки
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ReportIncident",
		"type":     incident.Type,
		"reporter": incident.ReporterID,
	})
	log.Info("Attempting to report a new incident")

	point := geo.Point{Lat: incident.Latitude, Lng: incident.Longitude}
	if err := point.Validate(); err != nil {
		return models.NewValidationError("invalid coordinates: %v", err)
	}
	if !models.ValidIncidentType(string(incident.Type)) {
		return models.NewValidationError("invalid incident type %q", incident.Type)
	}
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}
	if !models.ValidSeverity(string(incident.Severity)) {
		return models.NewValidationError("invalid severity %q", incident.Severity)
	}

	incident.Status = models.StatusActive
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not report incident: %w", err)
	}

	now := s.clock.Now()
	severityWeight := s.weights.SeverityWeight(incident.Severity)
	if err := s.patterns.Record(ctx, point, severityWeight, now.Hour(), int(now.Weekday())); err != nil {
		// Инцидент уже создан; состояние консистентно ("отчет принят,
		// паттерн не обновлен"), ошибку отдаем вызывающему
		log.WithError(err).Error("Failed to record historical pattern")
		return fmt.Errorf("service: incident reported but pattern update failed: %w", err)
	}

	s.publishEvent(ctx, log, events.EventReported, incident)
	s.metrics.IncidentsReported.Inc()

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// GetIncident возвращает инцидент (через кеш) вместе с голосом пользователя
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID, callerID string) (*models.IncidentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if incident == nil {
		incident, err = s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to get incident from repository")
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to set incident cache")
		}
	}

	detail := &models.IncidentDetail{Incident: incident}
	if callerID != "" {
		kind, ok, err := s.repo.GetVote(ctx, id, callerID)
		if err != nil {
			return nil, fmt.Errorf("service: could not get user vote: %w", err)
		}
		if ok {
			detail.UserVote = &kind
		}
	}
	return detail, nil
}

// Nearby возвращает инциденты в радиусе от точки, отсортированные по
// возрастанию точной дистанции
func (s *incidentService) Nearby(ctx context.Context, center geo.Point, radiusMeters float64, status string) ([]*models.NearbyIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Nearby",
		"radius":  radiusMeters,
	})
	log.Debug("Searching nearby incidents")

	if err := center.Validate(); err != nil {
		return nil, models.NewValidationError("invalid coordinates: %v", err)
	}
	if radiusMeters <= 0 {
		return nil, models.NewValidationError("radius must be positive")
	}

	filter := models.IncidentFilter{
		Statuses:      []models.Status{models.StatusActive, models.StatusVerified},
		ReportedSince: s.clock.Now().AddDate(0, 0, -nearbyWindowDays),
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, models.NewValidationError("invalid status %q", status)
		}
		filter.Statuses = []models.Status{models.Status(status)}
	}

	candidates, err := s.repo.FindInBox(ctx, geo.NewBoundingBox(center, radiusMeters), filter)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents in bounding box")
		return nil, fmt.Errorf("service: could not search nearby incidents: %w", err)
	}

	// Bounding box - надмножество круга: обязательная точная проверка
	// дистанции, иначе в ответ попадут "угловые" инциденты вне радиуса
	nearby := make([]*models.NearbyIncident, 0, len(candidates))
	for _, inc := range candidates {
		d := geo.Distance(center, geo.Point{Lat: inc.Latitude, Lng: inc.Longitude})
		if d <= radiusMeters {
			nearby = append(nearby, &models.NearbyIncident{Incident: inc, DistanceMeters: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	log.WithField("count", len(nearby)).Debug("Nearby search completed")
	return nearby, nil
}

// ListIncidents возвращает инциденты для карты с фильтрами по статусу и типу
func (s *incidentService) ListIncidents(ctx context.Context, filter models.ListFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	if filter.Status != "" && !models.ValidStatus(string(filter.Status)) {
		return nil, models.NewValidationError("invalid status %q", filter.Status)
	}
	if filter.Type != "" && !models.ValidIncidentType(string(filter.Type)) {
		return nil, models.NewValidationError("invalid incident type %q", filter.Type)
	}
	if filter.Days <= 0 {
		filter.Days = nearbyWindowDays
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// Vote применяет голос пользователя и срабатывающие пороги автопродвижения
func (s *incidentService) Vote(ctx context.Context, id uuid.UUID, voterID string, kind models.VoteKind) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Vote",
		"incident_id": id,
		"voter":       voterID,
	})
	log.Info("Applying vote")

	if kind != models.VoteUp && kind != models.VoteDown {
		return nil, models.NewValidationError("invalid vote type %q", kind)
	}

	incident, promo, err := s.repo.VoteOnIncident(ctx, id, voterID, kind)
	if err != nil {
		log.WithError(err).Error("Failed to apply vote in repository")
		return nil, fmt.Errorf("service: could not vote on incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	if promo.Verify {
		s.publishEvent(ctx, log, events.EventVerified, incident)
	}
	if promo.Dismiss {
		s.publishEvent(ctx, log, events.EventDismissed, incident)
	}
	s.metrics.VotesCast.WithLabelValues(string(kind)).Inc()

	log.WithFields(logrus.Fields{
		"upvotes":   incident.Upvotes,
		"downvotes": incident.Downvotes,
	}).Info("Vote applied successfully")
	return incident, nil
}

// UpdateStatus выполняет явную смену статуса автором инцидента
func (s *incidentService) UpdateStatus(ctx context.Context, id uuid.UUID, requesterID string, status models.Status) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent incident")
		return nil, fmt.Errorf("service: could not load incident for status update: %w", err)
	}

	if err := lifecycle.CanSetStatus(incident, requesterID, status); err != nil {
		log.WithError(err).Warn("Status update rejected")
		return nil, err
	}

	// Переход в resolved проставляет отметку времени, остальные статусы ее снимают
	var resolvedAt *time.Time
	if status == models.StatusResolved {
		now := s.clock.Now()
		resolvedAt = &now
	}

	updated, err := s.repo.SetStatus(ctx, id, status, resolvedAt)
	if err != nil {
		log.WithError(err).Error("Failed to set incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publishEvent(ctx, log, events.EventStatusChanged, updated)

	log.Info("Incident status updated successfully")
	return updated, nil
}

// Heatmap возвращает точки тепловой карты с интенсивностью по
// серьезности и давности инцидента
func (s *incidentService) Heatmap(ctx context.Context, center geo.Point, radiusMeters float64) ([]models.HeatmapPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Heatmap",
		"radius":  radiusMeters,
	})
	log.Debug("Building heatmap data")

	if err := center.Validate(); err != nil {
		return nil, models.NewValidationError("invalid coordinates: %v", err)
	}
	if radiusMeters <= 0 {
		return nil, models.NewValidationError("radius must be positive")
	}

	now := s.clock.Now()
	filter := models.IncidentFilter{
		ReportedSince: now.AddDate(0, 0, -heatmapWindowDays),
	}
	candidates, err := s.repo.FindInBox(ctx, geo.NewBoundingBox(center, radiusMeters), filter)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents for heatmap")
		return nil, fmt.Errorf("service: could not build heatmap: %w", err)
	}

	points := make([]models.HeatmapPoint, 0, len(candidates))
	for _, inc := range candidates {
		points = append(points, models.HeatmapPoint{
			Lat:       inc.Latitude,
			Lng:       inc.Longitude,
			Intensity: s.weights.SeverityWeight(inc.Severity) * ageFactor(now.Sub(inc.ReportedAt)),
		})
	}
	return points, nil
}

// publishEvent публикует событие, не прерывая исходный запрос: мутация
// ядра уже зафиксирована, сбой доставки только логируется
func (s *incidentService) publishEvent(ctx context.Context, log *logrus.Entry, eventType events.EventType, incident *models.Incident) {
	event := events.IncidentEvent{
		Type:      eventType,
		Incident:  incident,
		Timestamp: s.clock.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", eventType).Error("Failed to publish incident event")
	}
}
