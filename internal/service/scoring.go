package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Константы скоринга
const (
	scoreRadiusMeters   = 1000.0
	scoreWindowDays     = 30
	activeWindowHours   = 24
	activePenalty       = 5.0
	patternPenaltyScale = 15.0
	lateNightPenalty    = 10.0
	nightPenalty        = 5.0
	impactScale         = 10.0
)

// SafetyScorer вычисляет композитную оценку безопасности точки.
// Читает ProximityIndex и PatternStore, ничего не пишет.
type SafetyScorer interface {
	Score(ctx context.Context, center geo.Point) (*models.SafetyScore, error)
}

type safetyScorer struct {
	repo     IncidentRepository
	patterns PatternRepository
	weights  models.WeightConfig
	clock    clockwork.Clock
	logger   *logrus.Logger
	metrics  *observability.Metrics
}

func NewSafetyScorer(
	repo IncidentRepository,
	patterns PatternRepository,
	weights models.WeightConfig,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) SafetyScorer {
	return &safetyScorer{
		repo:     repo,
		patterns: patterns,
		weights:  weights,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
}

// Score вычисляет оценку безопасности 0-100 для точки на текущий момент
func (s *safetyScorer) Score(ctx context.Context, center geo.Point) (*models.SafetyScore, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "scoring",
		"method":  "Score",
	})
	log.Debug("Calculating safety score")

	if err := center.Validate(); err != nil {
		return nil, models.NewValidationError("invalid coordinates: %v", err)
	}

	now := s.clock.Now()

	// Инциденты в радиусе 1000 м за последние 30 дней
	filter := models.IncidentFilter{
		ReportedSince: now.AddDate(0, 0, -scoreWindowDays),
	}
	candidates, err := s.repo.FindInBox(ctx, geo.NewBoundingBox(center, scoreRadiusMeters), filter)
	if err != nil {
		log.WithError(err).Error("Failed to find incidents for scoring")
		return nil, fmt.Errorf("service: could not load incidents for scoring: %w", err)
	}

	type scored struct {
		incident *models.Incident
		distance float64
	}
	nearby := make([]scored, 0, len(candidates))
	for _, inc := range candidates {
		d := geo.Distance(center, geo.Point{Lat: inc.Latitude, Lng: inc.Longitude})
		if d <= scoreRadiusMeters {
			nearby = append(nearby, scored{incident: inc, distance: d})
		}
	}

	score := 100.0

	// Непрерывный штраф: тип * серьезность * близость * давность
	for _, n := range nearby {
		typeWeight := s.weights.TypeWeight(n.incident.Type)
		severityWeight := s.weights.SeverityWeight(n.incident.Severity)
		distanceFactor := 1 - n.distance/scoreRadiusMeters
		age := ageFactor(now.Sub(n.incident.ReportedAt))

		score -= typeWeight * severityWeight * distanceFactor * age * impactScale
	}

	// Плоский штраф за активные инциденты последних 24 часов. Свежесть
	// намеренно учитывается второй раз поверх ageFactor, чтобы усилить
	// вес непосредственной угрозы
	active := make([]*models.Incident, 0)
	for _, n := range nearby {
		if n.incident.Status == models.StatusActive &&
			now.Sub(n.incident.ReportedAt) <= activeWindowHours*time.Hour {
			active = append(active, n.incident)
		}
	}
	score -= activePenalty * float64(len(active))

	// Исторический паттерн для ячейки и текущего времени
	pattern, err := s.patterns.Lookup(ctx, center, now.Hour(), int(now.Weekday()))
	if err != nil {
		log.WithError(err).Error("Failed to lookup historical pattern")
		return nil, fmt.Errorf("service: could not lookup historical pattern: %w", err)
	}
	if pattern != nil {
		score -= pattern.RiskFactor * patternPenaltyScale
	}

	// Поправка на время суток: глубокая ночь перекрывает обычный ночной штраф
	hour := now.Hour()
	isNightTime := hour >= 22 || hour <= 5
	isLateNight := hour <= 4
	if isLateNight {
		score -= lateNightPenalty
	} else if isNightTime {
		score -= nightPenalty
	}

	final := int(math.Round(math.Max(0, math.Min(100, score))))
	level, label, color := models.RiskTier(final)

	alerts := buildAlerts(active, pattern, isLateNight, final)

	s.metrics.ScoreRequests.Inc()
	s.metrics.SafetyScore.Observe(float64(final))

	log.WithFields(logrus.Fields{
		"score":      final,
		"risk_level": level,
	}).Debug("Safety score calculated")

	return &models.SafetyScore{
		Score:     final,
		RiskLevel: level,
		RiskLabel: label,
		RiskColor: color,
		Alerts:    alerts,
		Stats: models.SafetyStats{
			TotalIncidents30Days: len(nearby),
			ActiveIncidents:      len(active),
			CurrentHour:          hour,
			IsNightTime:          isNightTime,
		},
	}, nil
}

// buildAlerts формирует предупреждения; состояние не сохраняется,
// предупреждения пересчитываются заново при каждом вызове
func buildAlerts(active []*models.Incident, pattern *models.PatternStats, isLateNight bool, score int) []models.SafetyAlert {
	alerts := make([]models.SafetyAlert, 0)

	if len(active) > 0 {
		plural := ""
		if len(active) > 1 {
			plural = "s"
		}
		listed := active
		if len(listed) > 3 {
			listed = listed[:3]
		}
		alerts = append(alerts, models.SafetyAlert{
			Type:      models.AlertActiveIncidents,
			Severity:  "high",
			Message:   fmt.Sprintf("%d active incident%s reported nearby in the last 24 hours", len(active), plural),
			Incidents: listed,
		})
	}

	if pattern != nil && pattern.RiskFactor > 0.5 {
		alerts = append(alerts, models.SafetyAlert{
			Type:     models.AlertHistoricalPattern,
			Severity: "warning",
			Message:  "This area historically has elevated incident rates at this time",
		})
	}

	if isLateNight && score < 70 {
		alerts = append(alerts, models.SafetyAlert{
			Type:     models.AlertTimeWarning,
			Severity: "info",
			Message:  "Late night hours - exercise extra caution",
		})
	}

	return alerts
}

// ageFactor - ступенчатая функция давности инцидента, невозрастающая по
// мере старения отчета
func ageFactor(age time.Duration) float64 {
	days := age.Hours() / 24
	switch {
	case days <= 1:
		return 1.0
	case days <= 3:
		return 0.8
	case days <= 7:
		return 0.6
	case days <= 14:
		return 0.4
	case days <= 30:
		return 0.2
	default:
		return 0.1
	}
}
