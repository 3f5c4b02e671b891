// Package geo содержит геометрию ядра: расстояние по большому кругу и
// bounding box для грубой предварительной фильтрации кандидатов.
package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// EarthRadiusMeters - радиус Земли для формулы гаверсинусов
	EarthRadiusMeters = 6371000.0

	// metersPerDegreeLat - приближенная длина одного градуса широты
	metersPerDegreeLat = 111000.0

	// PatternCellSizeMeters - размер пространственной ячейки исторических паттернов
	PatternCellSizeMeters = 500.0
)

// ErrInvalidCoordinate - широта или долгота вне допустимого диапазона WGS84
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Point - точка в координатах WGS84 (градусы)
type Point struct {
	Lat float64
	Lng float64
}

// Validate проверяет, что точка лежит в [-90,90]/[-180,180]
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %f: %w", p.Lat, ErrInvalidCoordinate)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %f: %w", p.Lng, ErrInvalidCoordinate)
	}
	return nil
}

// Distance возвращает расстояние по большому кругу между двумя точками в
// метрах (формула гаверсинусов). Детерминировано и симметрично.
func Distance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// BoundingBox - прямоугольник координат, надмножество круга заданного
// радиуса. Кандидаты из box обязаны пройти точную проверку Distance,
// иначе в выборку попадут "углы" за пределами окружности.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox строит box вокруг центра: смещение по широте radius/111000,
// по долготе - с поправкой на схождение меридианов через cos(lat)
func NewBoundingBox(center Point, radiusMeters float64) BoundingBox {
	latOffset := radiusMeters / metersPerDegreeLat
	lngOffset := radiusMeters / (metersPerDegreeLat * math.Cos(center.Lat*math.Pi/180))
	return BoundingBox{
		MinLat: center.Lat - latOffset,
		MaxLat: center.Lat + latOffset,
		MinLng: center.Lng - lngOffset,
		MaxLng: center.Lng + lngOffset,
	}
}

// SnapToCell привязывает точку к сетке ячеек исторических паттернов
// (~500 м). Все отчеты внутри одной ячейки попадают в один bucket.
func SnapToCell(p Point) Point {
	latStep := PatternCellSizeMeters / metersPerDegreeLat
	lngStep := PatternCellSizeMeters / (metersPerDegreeLat * math.Cos(p.Lat*math.Pi/180))
	return Point{
		Lat: math.Floor(p.Lat/latStep) * latStep,
		Lng: math.Floor(p.Lng/lngStep) * lngStep,
	}
}

// CellBox строит box для поиска ячеек паттернов вокруг точки
func CellBox(p Point) BoundingBox {
	return NewBoundingBox(p, PatternCellSizeMeters)
}
