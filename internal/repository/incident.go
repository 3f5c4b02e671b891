package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/lifecycle"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/service"
)

// incidentColumns - общий список колонок для выборки инцидента
const incidentColumns = `
	id,
	reporter_id,
	type,
	severity,
	latitude,
	longitude,
	title,
	COALESCE(description, ''),
	COALESCE(address, ''),
	status,
	upvotes,
	downvotes,
	verified,
	reported_at,
	resolved_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.Type,
		&incident.Severity,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Title,
		&incident.Description,
		&incident.Address,
		&incident.Status,
		&incident.Upvotes,
		&incident.Downvotes,
		&incident.Verified,
		&incident.ReportedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (reporter_id, type, severity, latitude, longitude, title, description, address, status)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9)
		RETURNING id, upvotes, downvotes, verified, reported_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ReporterID,
		incident.Type,
		incident.Severity,
		incident.Latitude,
		incident.Longitude,
		incident.Title,
		incident.Description,
		incident.Address,
		incident.Status,
	).Scan(&incident.ID, &incident.Upvotes, &incident.Downvotes, &incident.Verified, &incident.ReportedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// FindInBox возвращает кандидатов внутри bounding box с фильтрами по
// статусу и времени. Все условия - связанные параметры; box является
// надмножеством круга, точную проверку дистанции выполняет вызывающий.
func (r *IncidentRepository) FindInBox(ctx context.Context, box geo.BoundingBox, filter models.IncidentFilter) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE latitude BETWEEN $1 AND $2
			AND longitude BETWEEN $3 AND $4
			AND reported_at > $5`
	args := []any{box.MinLat, box.MaxLat, box.MinLng, box.MaxLng, filter.ReportedSince}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	query += " ORDER BY reported_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents in box: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

// List возвращает инциденты для карты, новые первыми
func (r *IncidentRepository) List(ctx context.Context, filter models.ListFilter) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE reported_at > NOW() - make_interval(days => $1)`
	args := []any{filter.Days}

	// Значения фильтров проверены по перечислениям на уровне сервиса и
	// передаются только как связанные параметры
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY reported_at DESC LIMIT 500;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}
	return incidents, nil
}

// VoteOnIncident применяет голос и проверки автопродвижения одной
// транзакцией. Строка инцидента блокируется FOR UPDATE, поэтому
// конкурентные голоса сериализуются и не теряют обновления счетчиков.
func (r *IncidentRepository) VoteOnIncident(ctx context.Context, id uuid.UUID, voterID string, kind models.VoteKind) (*models.Incident, lifecycle.Promotion, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 FOR UPDATE;`
	incident, err := scanIncident(tx.QueryRow(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.Promotion{}, fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
		}
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to lock incident for vote: %w", err)
	}

	prior := lifecycle.NoVote
	var priorKind models.VoteKind
	err = tx.QueryRow(ctx,
		`SELECT vote_type FROM incident_votes WHERE incident_id = $1 AND voter_id = $2;`,
		id, voterID,
	).Scan(&priorKind)
	switch {
	case err == nil:
		prior = lifecycle.StateFromKind(priorKind)
	case errors.Is(err, pgx.ErrNoRows):
		// Первый голос пользователя
	default:
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to load prior vote: %w", err)
	}

	transition, err := lifecycle.ApplyVote(prior, kind)
	if err != nil {
		return nil, lifecycle.Promotion{}, err
	}

	switch transition.Action {
	case lifecycle.Insert:
		_, err = tx.Exec(ctx,
			`INSERT INTO incident_votes (incident_id, voter_id, vote_type) VALUES ($1, $2, $3);`,
			id, voterID, kind)
	case lifecycle.Retract:
		_, err = tx.Exec(ctx,
			`DELETE FROM incident_votes WHERE incident_id = $1 AND voter_id = $2;`,
			id, voterID)
	case lifecycle.Swap:
		_, err = tx.Exec(ctx,
			`UPDATE incident_votes SET vote_type = $1 WHERE incident_id = $2 AND voter_id = $3;`,
			kind, id, voterID)
	}
	if err != nil {
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to apply vote row change: %w", err)
	}

	err = tx.QueryRow(ctx,
		`UPDATE incidents SET upvotes = upvotes + $1, downvotes = downvotes + $2 WHERE id = $3
		 RETURNING upvotes, downvotes;`,
		transition.UpDelta, transition.DownDelta, id,
	).Scan(&incident.Upvotes, &incident.Downvotes)
	if err != nil {
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to update vote counters: %w", err)
	}

	// Автопродвижение по новым счетчикам: сначала подтверждение, затем
	// отклонение. Проверки идемпотентны - повторный запуск сходится к
	// тому же итоговому состоянию
	promo := lifecycle.EvaluatePromotion(incident)
	if promo.Verify {
		if _, err := tx.Exec(ctx,
			`UPDATE incidents SET verified = TRUE, status = $1 WHERE id = $2;`,
			models.StatusVerified, id); err != nil {
			return nil, lifecycle.Promotion{}, fmt.Errorf("failed to auto-verify incident: %w", err)
		}
		incident.Verified = true
		incident.Status = models.StatusVerified
	}
	if promo.Dismiss {
		if _, err := tx.Exec(ctx,
			`UPDATE incidents SET status = $1 WHERE id = $2;`,
			models.StatusDismissed, id); err != nil {
			return nil, lifecycle.Promotion{}, fmt.Errorf("failed to auto-dismiss incident: %w", err)
		}
		incident.Status = models.StatusDismissed
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, lifecycle.Promotion{}, fmt.Errorf("failed to commit vote transaction: %w", err)
	}
	return incident, promo, nil
}

// GetVote возвращает голос пользователя по инциденту, если он есть
func (r *IncidentRepository) GetVote(ctx context.Context, id uuid.UUID, voterID string) (models.VoteKind, bool, error) {
	var kind models.VoteKind
	err := r.db.QueryRow(ctx,
		`SELECT vote_type FROM incident_votes WHERE incident_id = $1 AND voter_id = $2;`,
		id, voterID,
	).Scan(&kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get vote: %w", err)
	}
	return kind, true, nil
}

// SetStatus выставляет статус и отметку resolved_at одной командой
func (r *IncidentRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.Status, resolvedAt *time.Time) (*models.Incident, error) {
	query := `
		UPDATE incidents SET status = $1, resolved_at = $2
		WHERE id = $3
		RETURNING ` + incidentColumns + `;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, status, resolvedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to set incident status: %w", err)
	}
	return incident, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
