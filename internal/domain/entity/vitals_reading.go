package entity

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// VitalsReading представляет полный набор показателей одного такта симуляции (Aggregate Root).
// Все пять значений присваиваются вместе: частичное обновление невалидно.
type VitalsReading struct {
	id          string
	heartRate   float64
	spo2        float64
	systolicBP  float64
	diastolicBP float64
	temperature float64
	collectedAt time.Time
}

// NewVitalsReading создает новое показание (Factory Method)
func NewVitalsReading(
	heartRate, spo2, systolicBP, diastolicBP, temperature float64,
	collectedAt time.Time,
) (*VitalsReading, error) {
	if collectedAt.IsZero() {
		return nil, errors.New("collected_at cannot be zero")
	}

	for _, value := range []float64{heartRate, spo2, systolicBP, diastolicBP, temperature} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.New("vital value must be finite")
		}
		if value <= 0 {
			return nil, errors.New("vital value must be positive")
		}
	}

	return &VitalsReading{
		id:          uuid.New().String(),
		heartRate:   heartRate,
		spo2:        spo2,
		systolicBP:  systolicBP,
		diastolicBP: diastolicBP,
		temperature: temperature,
		collectedAt: collectedAt,
	}, nil
}

// ID возвращает идентификатор показания
func (r *VitalsReading) ID() string {
	return r.id
}

// HeartRate возвращает частоту пульса (BPM)
func (r *VitalsReading) HeartRate() float64 {
	return r.heartRate
}

// SpO2 возвращает сатурацию кислорода (%)
func (r *VitalsReading) SpO2() float64 {
	return r.spo2
}

// SystolicBP возвращает систолическое давление (mmHg)
func (r *VitalsReading) SystolicBP() float64 {
	return r.systolicBP
}

// DiastolicBP возвращает диастолическое давление (mmHg)
func (r *VitalsReading) DiastolicBP() float64 {
	return r.diastolicBP
}

// Temperature возвращает температуру тела (°F)
func (r *VitalsReading) Temperature() float64 {
	return r.temperature
}

// CollectedAt возвращает момент генерации показания
func (r *VitalsReading) CollectedAt() time.Time {
	return r.collectedAt
}
