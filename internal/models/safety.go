package models

import "math"

// Типы предупреждений в ответе оценки безопасности
const (
	AlertActiveIncidents   = "active_incidents"
	AlertHistoricalPattern = "historical_pattern"
	AlertTimeWarning       = "time_warning"
)

// SafetyAlert - предупреждение, пересчитываемое заново при каждом запросе
type SafetyAlert struct {
	Type      string      `json:"type"`
	Severity  string      `json:"severity"`
	Message   string      `json:"message"`
	Incidents []*Incident `json:"incidents,omitempty"`
}

// SafetyStats - статистика, сопровождающая оценку безопасности
type SafetyStats struct {
	TotalIncidents30Days int  `json:"totalIncidents30Days"`
	ActiveIncidents      int  `json:"activeIncidents"`
	CurrentHour          int  `json:"currentHour"`
	IsNightTime          bool `json:"isNightTime"`
}

// SafetyScore - итоговая оценка безопасности точки: 0 - максимальный риск,
// 100 - безопасно
type SafetyScore struct {
	Score     int           `json:"score"`
	RiskLevel string        `json:"riskLevel"`
	RiskLabel string        `json:"riskLabel"`
	RiskColor string        `json:"riskColor"`
	Alerts    []SafetyAlert `json:"alerts"`
	Stats     SafetyStats   `json:"stats"`
}

// Пороговые уровни риска (включительная нижняя граница)
var riskTiers = []struct {
	min   int
	level string
	label string
	color string
}{
	{80, "safe", "Safe Area", "#00e676"},
	{60, "moderate", "Moderate Risk", "#ffc400"},
	{40, "elevated", "Elevated Risk", "#ff9100"},
	{20, "high", "High Risk", "#ff5252"},
	{0, "critical", "Critical Risk", "#ff1744"},
}

// RiskTier возвращает уровень, метку и цвет для оценки
func RiskTier(score int) (level, label, color string) {
	for _, t := range riskTiers {
		if score >= t.min {
			return t.level, t.label, t.color
		}
	}
	last := riskTiers[len(riskTiers)-1]
	return last.level, last.label, last.color
}

// PatternStats - агрегат исторических паттернов для точки и времени
type PatternStats struct {
	MeanCount    float64 `json:"incident_count"`
	MeanSeverity float64 `json:"severity"`
	RiskFactor   float64 `json:"risk_factor"`
}

// NewPatternStats вычисляет насыщающийся безразмерный фактор риска в [0,1]
func NewPatternStats(meanCount, meanSeverity float64) *PatternStats {
	return &PatternStats{
		MeanCount:    meanCount,
		MeanSeverity: meanSeverity,
		RiskFactor:   math.Min(1, meanCount*meanSeverity/10),
	}
}
