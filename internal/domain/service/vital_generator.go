package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/domain/entity"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// AnomalyOdds представляет вероятность аномального значения как дробь numerator/denominator
type AnomalyOdds struct {
	numerator   int
	denominator int
}

// NewAnomalyOdds создает AnomalyOdds с валидацией
func NewAnomalyOdds(numerator, denominator int) (AnomalyOdds, error) {
	if denominator <= 0 {
		return AnomalyOdds{}, errors.New("anomaly odds denominator must be positive")
	}
	if numerator < 0 || numerator > denominator {
		return AnomalyOdds{}, errors.New("anomaly odds numerator must be within [0, denominator]")
	}

	return AnomalyOdds{
		numerator:   numerator,
		denominator: denominator,
	}, nil
}

// DefaultAnomalyOdds возвращает вероятность по умолчанию: 1 из 5
func DefaultAnomalyOdds() AnomalyOdds {
	return AnomalyOdds{numerator: 1, denominator: 5}
}

// Numerator возвращает числитель дроби
func (o AnomalyOdds) Numerator() int {
	return o.numerator
}

// Denominator возвращает знаменатель дроби
func (o AnomalyOdds) Denominator() int {
	return o.denominator
}

// VitalGenerator генерирует случайные значения показателей (Domain Service).
// Источник случайности инжектируется явно, чтобы тесты могли задать seed
// и проверять точные последовательности.
type VitalGenerator struct {
	ranges valueobject.RangeTable
	odds   AnomalyOdds
	rand   *rand.Rand
}

// NewVitalGenerator создает новый VitalGenerator
func NewVitalGenerator(ranges valueobject.RangeTable, odds AnomalyOdds, source rand.Source) *VitalGenerator {
	return &VitalGenerator{
		ranges: ranges,
		odds:   odds,
		rand:   rand.New(source),
	}
}

// Generate производит свежие значения всех пяти показателей.
// Решение об аномальности принимается для каждого показателя независимо:
// систолическое и диастолическое давление могут выброситься по отдельности.
func (g *VitalGenerator) Generate(at time.Time) (*entity.VitalsReading, error) {
	heartRate := g.drawVital(valueobject.HeartRate)
	spo2 := g.drawVital(valueobject.SpO2)
	systolic := g.drawVital(valueobject.SystolicBP)
	diastolic := g.drawVital(valueobject.DiastolicBP)
	temperature := g.drawVital(valueobject.Temperature)

	return entity.NewVitalsReading(heartRate, spo2, systolic, diastolic, temperature, at)
}

// drawVital тянет одно значение показателя: аномальное с вероятностью odds,
// иначе равномерное из нормального диапазона
func (g *VitalGenerator) drawVital(vital valueobject.VitalType) float64 {
	ranges, err := g.ranges.Ranges(vital)
	if err != nil {
		// RangeTable валидируется при создании: сюда попасть нельзя
		return 0
	}

	if g.anomalous() && ranges.HasExcursions() {
		return g.drawUniform(g.pickExcursion(ranges))
	}

	return g.drawUniform(ranges.Normal())
}

// anomalous решает, будет ли текущий такт аномальным для показателя:
// равномерное целое из [1, denominator], аномалия при значении <= numerator
func (g *VitalGenerator) anomalous() bool {
	return g.rand.Intn(g.odds.denominator)+1 <= g.odds.numerator
}

// pickExcursion выбирает диапазон выброса; при двух доступных — с равной вероятностью
func (g *VitalGenerator) pickExcursion(ranges valueobject.VitalRanges) valueobject.NormalRange {
	low, hasLow := ranges.LowExcursion()
	high, hasHigh := ranges.HighExcursion()

	switch {
	case hasLow && hasHigh:
		if g.rand.Intn(2) == 0 {
			return low
		}
		return high
	case hasLow:
		return low
	default:
		return high
	}
}

// drawUniform возвращает равномерное значение из диапазона
func (g *VitalGenerator) drawUniform(r valueobject.NormalRange) float64 {
	return r.Low() + g.rand.Float64()*r.Width()
}
