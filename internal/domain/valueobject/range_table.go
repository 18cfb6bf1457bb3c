package valueobject

import (
	"errors"
	"fmt"
)

// VitalRanges содержит нормальный диапазон показателя и диапазоны выбросов,
// из которых генерируются аномальные значения (Value Object)
type VitalRanges struct {
	normal        NormalRange
	lowExcursion  NormalRange
	highExcursion NormalRange
	hasLow        bool
	hasHigh       bool
}

// NewVitalRanges создает VitalRanges только с нормальным диапазоном
func NewVitalRanges(normal NormalRange) VitalRanges {
	return VitalRanges{normal: normal}
}

// WithLowExcursion возвращает копию с диапазоном выброса ниже нормы
func (vr VitalRanges) WithLowExcursion(r NormalRange) VitalRanges {
	vr.lowExcursion = r
	vr.hasLow = true
	return vr
}

// WithHighExcursion возвращает копию с диапазоном выброса выше нормы
func (vr VitalRanges) WithHighExcursion(r NormalRange) VitalRanges {
	vr.highExcursion = r
	vr.hasHigh = true
	return vr
}

// Normal возвращает нормальный диапазон
func (vr VitalRanges) Normal() NormalRange {
	return vr.normal
}

// LowExcursion возвращает диапазон выброса ниже нормы, если он задан
func (vr VitalRanges) LowExcursion() (NormalRange, bool) {
	return vr.lowExcursion, vr.hasLow
}

// HighExcursion возвращает диапазон выброса выше нормы, если он задан
func (vr VitalRanges) HighExcursion() (NormalRange, bool) {
	return vr.highExcursion, vr.hasHigh
}

// HasExcursions проверяет, задан ли хотя бы один диапазон выбросов
func (vr VitalRanges) HasExcursions() bool {
	return vr.hasLow || vr.hasHigh
}

// RangeTable содержит диапазоны всех генерируемых показателей.
// Статичная конфигурация: иммутабельна после создания.
type RangeTable struct {
	ranges map[VitalType]VitalRanges
}

// NewRangeTable создает RangeTable с валидацией полноты:
// каждый генерируемый показатель обязан иметь диапазоны
func NewRangeTable(ranges map[VitalType]VitalRanges) (RangeTable, error) {
	for _, vital := range GeneratedVitals() {
		if _, ok := ranges[vital]; !ok {
			return RangeTable{}, fmt.Errorf("missing ranges for vital %q", vital)
		}
	}

	// Копируем map для иммутабельности
	copied := make(map[VitalType]VitalRanges, len(ranges))
	for vital, vr := range ranges {
		copied[vital] = vr
	}

	return RangeTable{ranges: copied}, nil
}

// Ranges возвращает диапазоны показателя
func (t RangeTable) Ranges(vital VitalType) (VitalRanges, error) {
	vr, ok := t.ranges[vital]
	if !ok {
		return VitalRanges{}, errors.New("no ranges configured for vital type")
	}
	return vr, nil
}

// DefaultRangeTable возвращает клинические диапазоны по умолчанию.
// У SpO2 нет выброса выше нормы: показатель односторонний (максимум 100%).
func DefaultRangeTable() RangeTable {
	table, _ := NewRangeTable(map[VitalType]VitalRanges{
		HeartRate: NewVitalRanges(NormalRange{low: 60, high: 100}).
			WithLowExcursion(NormalRange{low: 40, high: 59}).
			WithHighExcursion(NormalRange{low: 101, high: 140}),
		SpO2: NewVitalRanges(NormalRange{low: 95, high: 100}).
			WithLowExcursion(NormalRange{low: 90, high: 94}),
		SystolicBP: NewVitalRanges(NormalRange{low: 90, high: 120}).
			WithLowExcursion(NormalRange{low: 80, high: 89}).
			WithHighExcursion(NormalRange{low: 121, high: 140}),
		DiastolicBP: NewVitalRanges(NormalRange{low: 60, high: 80}).
			WithLowExcursion(NormalRange{low: 50, high: 59}).
			WithHighExcursion(NormalRange{low: 81, high: 90}),
		Temperature: NewVitalRanges(NormalRange{low: 97.8, high: 99.1}).
			WithLowExcursion(NormalRange{low: 96.0, high: 97.7}).
			WithHighExcursion(NormalRange{low: 99.2, high: 100.4}),
	})
	return table
}
