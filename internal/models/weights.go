package models

// TypeInfo - метка для отображения и вес типа инцидента в [0,1]
type TypeInfo struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// defaultWeight используется для неизвестных ключей типа/серьезности
const defaultWeight = 0.5

// TypeCatalog - фиксированный каталог типов инцидентов
var TypeCatalog = map[IncidentType]TypeInfo{
	TypeTheft:      {Label: "Theft", Weight: 0.7},
	TypeAssault:    {Label: "Assault", Weight: 1.0},
	TypeHarassment: {Label: "Harassment", Weight: 0.8},
	TypeVandalism:  {Label: "Vandalism", Weight: 0.4},
	TypeSuspicious: {Label: "Suspicious Activity", Weight: 0.5},
	TypeRobbery:    {Label: "Robbery", Weight: 0.9},
	TypeCarBreak:   {Label: "Car Break-in", Weight: 0.6},
	TypeShooting:   {Label: "Shooting", Weight: 1.0},
	TypeAccident:   {Label: "Accident", Weight: 0.5},
	TypeOther:      {Label: "Other", Weight: 0.3},
}

// ValidIncidentType проверяет принадлежность типа к каталогу
func ValidIncidentType(t string) bool {
	_, ok := TypeCatalog[IncidentType(t)]
	return ok
}

// ValidSeverity проверяет, что строка является известной серьезностью
func ValidSeverity(s string) bool {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// WeightConfig - неизменяемая конфигурация весов для расчета оценки
// безопасности. Передается в скоринг явно, а не через глобальное
// изменяемое состояние, чтобы расчет оставался чистой функцией.
type WeightConfig struct {
	Types      map[IncidentType]float64
	Severities map[Severity]float64
}

// DefaultWeights возвращает веса из каталога по умолчанию
func DefaultWeights() WeightConfig {
	types := make(map[IncidentType]float64, len(TypeCatalog))
	for t, info := range TypeCatalog {
		types[t] = info.Weight
	}
	return WeightConfig{
		Types: types,
		Severities: map[Severity]float64{
			SeverityLow:      0.3,
			SeverityMedium:   0.6,
			SeverityHigh:     0.9,
			SeverityCritical: 1.0,
		},
	}
}

// TypeWeight возвращает вес типа, defaultWeight для неизвестного ключа
func (w WeightConfig) TypeWeight(t IncidentType) float64 {
	if v, ok := w.Types[t]; ok {
		return v
	}
	return defaultWeight
}

// SeverityWeight возвращает вес серьезности, defaultWeight для неизвестного ключа
func (w WeightConfig) SeverityWeight(s Severity) float64 {
	if v, ok := w.Severities[s]; ok {
		return v
	}
	return defaultWeight
}
