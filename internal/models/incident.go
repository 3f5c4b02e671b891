package models

import (
	"time"

	"github.com/google/uuid"
)

// Status - статус жизненного цикла инцидента
type Status string

const (
	StatusActive        Status = "active"
	StatusInvestigating Status = "investigating"
	StatusVerified      Status = "verified"
	StatusResolved      Status = "resolved"
	StatusDismissed     Status = "dismissed"
)

// ValidStatus проверяет, что строка является известным статусом
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInvestigating, StatusVerified, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// IncidentType - тип инцидента из фиксированного каталога
type IncidentType string

const (
	TypeTheft      IncidentType = "theft"
	TypeAssault    IncidentType = "assault"
	TypeHarassment IncidentType = "harassment"
	TypeVandalism  IncidentType = "vandalism"
	TypeSuspicious IncidentType = "suspicious"
	TypeRobbery    IncidentType = "robbery"
	TypeCarBreak   IncidentType = "carbreak"
	TypeShooting   IncidentType = "shooting"
	TypeAccident   IncidentType = "accident"
	TypeOther      IncidentType = "other"
)

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Incident - доменная модель инцидента. Поля Status, Verified, Upvotes,
// Downvotes и ResolvedAt изменяются только через жизненный цикл (голоса и
// явную смену статуса), все остальные поля неизменяемы после создания.
type Incident struct {
	ID          uuid.UUID    `json:"id"`
	ReporterID  string       `json:"reporter_id"`
	Type        IncidentType `json:"type"`
	Severity    Severity     `json:"severity"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Address     string       `json:"address,omitempty"`
	Status      Status       `json:"status"`
	Upvotes     int          `json:"upvotes"`
	Downvotes   int          `json:"downvotes"`
	Verified    bool         `json:"verified"`
	ReportedAt  time.Time    `json:"reported_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
}

// VoteKind - вид голоса за инцидент
type VoteKind string

const (
	VoteUp   VoteKind = "upvote"
	VoteDown VoteKind = "downvote"
)

// Vote - голос пользователя за инцидент, не более одного на пару
// (инцидент, пользователь)
type Vote struct {
	IncidentID uuid.UUID `json:"incident_id"`
	VoterID    string    `json:"voter_id"`
	Kind       VoteKind  `json:"vote_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// NearbyIncident - инцидент с рассчитанной дистанцией до точки запроса
type NearbyIncident struct {
	*Incident
	DistanceMeters float64 `json:"distance"`
}

// IncidentDetail - инцидент вместе с голосом запросившего пользователя
type IncidentDetail struct {
	*Incident
	UserVote *VoteKind `json:"user_vote,omitempty"`
}

// IncidentFilter - фильтр для выборки кандидатов по bounding box
type IncidentFilter struct {
	Statuses      []Status
	ReportedSince time.Time
}

// ListFilter - фильтр для списка инцидентов на карте
type ListFilter struct {
	Status Status
	Type   IncidentType
	Days   int
}

// HeatmapPoint - точка тепловой карты с интенсивностью
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}
