package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для создания отчета об инциденте
// @Description DTO для создания отчета об инциденте
type ReportIncidentRequest struct {
	ReporterID string `json:"reporter_id" validate:"required"`
	// Координаты - указатели: required на float64 отверг бы легальный 0
	// (экватор и нулевой меридиан) как незаполненное поле
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Type        string   `json:"type" validate:"required"`
	Severity    string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
}

// VoteRequest DTO для голоса за инцидент
// @Description DTO для голоса за инцидент
type VoteRequest struct {
	VoterID  string `json:"voter_id" validate:"required"`
	VoteType string `json:"vote_type" validate:"required,oneof=upvote downvote"`
}

// UpdateStatusRequest DTO для явной смены статуса автором
// @Description DTO для явной смены статуса автором
type UpdateStatusRequest struct {
	RequesterID string `json:"requester_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=active resolved dismissed"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID  `json:"id"`
	ReporterID  string     `json:"reporter_id"`
	Type        string     `json:"type"`
	Severity    string     `json:"severity"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	Status      string     `json:"status"`
	Upvotes     int        `json:"upvotes"`
	Downvotes   int        `json:"downvotes"`
	Verified    bool       `json:"verified"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	UserVote    string     `json:"user_vote,omitempty"`
	// Distance заполняется только в ответах поиска поблизости
	Distance *float64 `json:"distance,omitempty"`
}
