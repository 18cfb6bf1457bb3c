package valueobject

import (
	"errors"
	"time"
)

// VitalSample представляет одно измерение показателя в момент времени (Value Object)
// Иммутабельный объект, создается один раз за такт на метрику
type VitalSample struct {
	timestamp time.Time
	value     float64
}

// NewVitalSample создает новый VitalSample с валидацией
func NewVitalSample(timestamp time.Time, value float64) (VitalSample, error) {
	if timestamp.IsZero() {
		return VitalSample{}, errors.New("sample timestamp cannot be zero")
	}

	return VitalSample{
		timestamp: timestamp,
		value:     value,
	}, nil
}

// Timestamp возвращает момент измерения
func (s VitalSample) Timestamp() time.Time {
	return s.timestamp
}

// Value возвращает значение показателя
func (s VitalSample) Value() float64 {
	return s.value
}
