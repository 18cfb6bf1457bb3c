package valueobject

import "errors"

// VitalType представляет тип витального показателя (Value Object)
type VitalType string

const (
	HeartRate            VitalType = "heart_rate"
	SpO2                 VitalType = "spo2"
	SystolicBP           VitalType = "systolic_bp"
	DiastolicBP          VitalType = "diastolic_bp"
	Temperature          VitalType = "temperature"
	MeanArterialPressure VitalType = "mean_arterial_pressure"
)

// Validate проверяет валидность типа показателя
func (vt VitalType) Validate() error {
	switch vt {
	case HeartRate, SpO2, SystolicBP, DiastolicBP, Temperature, MeanArterialPressure:
		return nil
	default:
		return errors.New("invalid vital type")
	}
}

// String возвращает строковое представление типа показателя
func (vt VitalType) String() string {
	return string(vt)
}

// GeneratedVitals возвращает пять показателей, которые генерирует симулятор.
// MAP сюда не входит: он существует только как производная величина.
func GeneratedVitals() []VitalType {
	return []VitalType{HeartRate, SpO2, SystolicBP, DiastolicBP, Temperature}
}

// TrackedMetrics возвращает показатели, по которым ведется история
// (выбор графиков dashboard: пульс, SpO2 и MAP)
func TrackedMetrics() []VitalType {
	return []VitalType{HeartRate, SpO2, MeanArterialPressure}
}

// IsTracked проверяет, ведется ли по показателю история
func (vt VitalType) IsTracked() bool {
	switch vt {
	case HeartRate, SpO2, MeanArterialPressure:
		return true
	default:
		return false
	}
}
