package dto

import (
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// VitalDTO представляет текущее значение показателя для передачи между слоями
type VitalDTO struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Status string  `json:"status"` // "normal" или "abnormal"
}

// SampleDTO представляет одну точку истории показателя
type SampleDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// UnitFor возвращает единицу измерения показателя
func UnitFor(vital valueobject.VitalType) string {
	switch vital {
	case valueobject.HeartRate:
		return "bpm"
	case valueobject.SpO2:
		return "%"
	case valueobject.SystolicBP, valueobject.DiastolicBP, valueobject.MeanArterialPressure:
		return "mmHg"
	case valueobject.Temperature:
		return "°F"
	default:
		return ""
	}
}

// ToSampleDTOs конвертирует историю из Value Objects в DTO
func ToSampleDTOs(samples []valueobject.VitalSample) []SampleDTO {
	dtos := make([]SampleDTO, len(samples))
	for i, s := range samples {
		dtos[i] = SampleDTO{
			Timestamp: s.Timestamp(),
			Value:     s.Value(),
		}
	}
	return dtos
}
