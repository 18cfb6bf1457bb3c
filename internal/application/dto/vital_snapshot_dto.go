package dto

import (
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/domain/entity"
	"github.com/dreschagin/vitals-dashboard/internal/domain/service"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
	"github.com/google/uuid"
)

// VitalSnapshotDTO представляет атомарный snapshot всех показателей и историй.
// Публикуется целиком один раз за такт: потребитель никогда не видит
// частично обновленное состояние
type VitalSnapshotDTO struct {
	Timestamp            time.Time           `json:"timestamp"`
	HeartRate            *VitalDTO           `json:"heart_rate"`
	SpO2                 *VitalDTO           `json:"spo2"`
	SystolicBP           *VitalDTO           `json:"systolic_bp"`
	DiastolicBP          *VitalDTO           `json:"diastolic_bp"`
	Temperature          *VitalDTO           `json:"temperature"`
	MeanArterialPressure *VitalDTO           `json:"mean_arterial_pressure"`
	HeartRateHistory     []SampleDTO         `json:"heart_rate_history"`
	SpO2History          []SampleDTO         `json:"spo2_history"`
	MAPHistory           []SampleDTO         `json:"map_history"`
	Summary              *SnapshotSummaryDTO `json:"summary"`
}

// SnapshotSummaryDTO содержит сводную информацию по snapshot
type SnapshotSummaryDTO struct {
	TotalVitals   int    `json:"total_vitals"`
	AbnormalCount int    `json:"abnormal_count"`
	HasAbnormal   bool   `json:"has_abnormal"`
	OverallStatus string `json:"overall_status"` // "stable" или "abnormal"
}

// Histories группирует снимки трех историй для построения snapshot
type Histories struct {
	HeartRate []valueobject.VitalSample
	SpO2      []valueobject.VitalSample
	MAP       []valueobject.VitalSample
}

// NewVitalSnapshotDTO собирает snapshot из показания, производного MAP и историй.
// Статус каждого показателя вычисляется классификатором; статус MAP
// наследуется от пары давлений, а не от собственного диапазона
func NewVitalSnapshotDTO(
	reading *entity.VitalsReading,
	mapValue float64,
	classifier *service.VitalClassifier,
	histories Histories,
) *VitalSnapshotDTO {
	bpStatus := classifier.ClassifyBloodPressure(reading.SystolicBP(), reading.DiastolicBP())

	snapshot := &VitalSnapshotDTO{
		Timestamp:            reading.CollectedAt(),
		HeartRate:            newVitalDTO(valueobject.HeartRate, reading.HeartRate(), classifier.Classify(valueobject.HeartRate, reading.HeartRate())),
		SpO2:                 newVitalDTO(valueobject.SpO2, reading.SpO2(), classifier.Classify(valueobject.SpO2, reading.SpO2())),
		SystolicBP:           newVitalDTO(valueobject.SystolicBP, reading.SystolicBP(), classifier.Classify(valueobject.SystolicBP, reading.SystolicBP())),
		DiastolicBP:          newVitalDTO(valueobject.DiastolicBP, reading.DiastolicBP(), classifier.Classify(valueobject.DiastolicBP, reading.DiastolicBP())),
		Temperature:          newVitalDTO(valueobject.Temperature, reading.Temperature(), classifier.Classify(valueobject.Temperature, reading.Temperature())),
		MeanArterialPressure: newVitalDTO(valueobject.MeanArterialPressure, mapValue, bpStatus),
		HeartRateHistory:     ToSampleDTOs(histories.HeartRate),
		SpO2History:          ToSampleDTOs(histories.SpO2),
		MAPHistory:           ToSampleDTOs(histories.MAP),
		Summary:              &SnapshotSummaryDTO{},
	}

	// Давление считается одной плиткой: пара входит в сводку одним статусом
	tiles := []*VitalDTO{snapshot.HeartRate, snapshot.SpO2, snapshot.Temperature}
	abnormalCount := 0
	for _, tile := range tiles {
		if tile.Status == service.Abnormal.String() {
			abnormalCount++
		}
	}
	if bpStatus.IsAbnormal() {
		abnormalCount++
	}

	snapshot.Summary.TotalVitals = len(tiles) + 1
	snapshot.Summary.AbnormalCount = abnormalCount
	snapshot.Summary.HasAbnormal = abnormalCount > 0
	if abnormalCount > 0 {
		snapshot.Summary.OverallStatus = "abnormal"
	} else {
		snapshot.Summary.OverallStatus = "stable"
	}

	return snapshot
}

func newVitalDTO(vital valueobject.VitalType, value float64, status service.Classification) *VitalDTO {
	return &VitalDTO{
		Value:  value,
		Unit:   UnitFor(vital),
		Status: status.String(),
	}
}

// AlertDTO представляет уведомление об аномальном показателе
type AlertDTO struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Vital     string    `json:"vital"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Message   string    `json:"message"`
}

// NewAlertDTO создает новый alert
func NewAlertDTO(vital valueobject.VitalType, value float64, at time.Time, message string) *AlertDTO {
	return &AlertDTO{
		ID:        uuid.New().String(),
		Timestamp: at,
		Vital:     vital.String(),
		Value:     value,
		Unit:      UnitFor(vital),
		Message:   message,
	}
}

// VitalHistoryDTO представляет историю одной метрики с агрегатами
type VitalHistoryDTO struct {
	Metric        string      `json:"metric"`
	Unit          string      `json:"unit"`
	Samples       []SampleDTO `json:"samples"`
	Average       float64     `json:"average"`
	Min           float64     `json:"min"`
	Max           float64     `json:"max"`
	AbnormalCount int         `json:"abnormal_count"`
}
