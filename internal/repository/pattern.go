package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/community_safety_system/internal/geo"
	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/shenikar/community_safety_system/internal/service"
)

// PatternRepository - хранилище исторических паттернов инцидентов:
// агрегаты по пространственной ячейке, часу суток и дню недели
type PatternRepository struct {
	db *pgxpool.Pool
}

func NewPatternRepository(db *pgxpool.Pool) service.PatternRepository {
	return &PatternRepository{db: db}
}

// runningMean возвращает среднее выборки после добавления value к count
// уже учтенным элементам со средним oldMean. Эта же рекуррентность зашита
// в ON CONFLICT-выражении Record; тесты пакета фиксируют ее поведение.
func runningMean(oldMean float64, count int, value float64) float64 {
	return (oldMean*float64(count) + value) / float64(count+1)
}

// Record инкрементально обновляет bucket ячейки одной атомарной командой:
// upsert пересчитывает скользящее среднее runningMean, поэтому
// avg_severity всегда равно арифметическому среднему всех записанных
// серьезностей, а конкурентные отчеты в одну ячейку не теряют обновлений
func (r *PatternRepository) Record(ctx context.Context, p geo.Point, severityWeight float64, hour, dayOfWeek int) error {
	cell := geo.SnapToCell(p)

	query := `
		INSERT INTO historical_incident_patterns
			(cell_lat, cell_lng, hour_of_day, day_of_week, incident_count, avg_severity)
		VALUES ($1, $2, $3, $4, 1, $5)
		ON CONFLICT (cell_lat, cell_lng, hour_of_day, day_of_week) DO UPDATE SET
			avg_severity = (historical_incident_patterns.avg_severity * historical_incident_patterns.incident_count + EXCLUDED.avg_severity)
				/ (historical_incident_patterns.incident_count + 1),
			incident_count = historical_incident_patterns.incident_count + 1,
			last_updated = NOW();
	`
	if _, err := r.db.Exec(ctx, query, cell.Lat, cell.Lng, hour, dayOfWeek, severityWeight); err != nil {
		return fmt.Errorf("failed to record historical pattern: %w", err)
	}
	return nil
}

// Lookup агрегирует buckets, чья ячейка попадает в окно ~500 м вокруг
// точки, а час/день равны запрошенным или являются wildcard (NULL).
// Возвращает nil при отсутствии данных - это нормальный исход, не ошибка.
func (r *PatternRepository) Lookup(ctx context.Context, p geo.Point, hour, dayOfWeek int) (*models.PatternStats, error) {
	box := geo.CellBox(p)

	query := `
		SELECT AVG(incident_count)::float8, AVG(avg_severity)::float8
		FROM historical_incident_patterns
		WHERE cell_lat BETWEEN $1 AND $2
			AND cell_lng BETWEEN $3 AND $4
			AND (hour_of_day = $5 OR hour_of_day IS NULL)
			AND (day_of_week = $6 OR day_of_week IS NULL);
	`
	var meanCount, meanSeverity *float64
	err := r.db.QueryRow(ctx, query,
		box.MinLat, box.MaxLat, box.MinLng, box.MaxLng, hour, dayOfWeek,
	).Scan(&meanCount, &meanSeverity)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup historical pattern: %w", err)
	}

	if meanCount == nil || meanSeverity == nil || *meanCount <= 0 {
		return nil, nil
	}
	return models.NewPatternStats(*meanCount, *meanSeverity), nil
}
