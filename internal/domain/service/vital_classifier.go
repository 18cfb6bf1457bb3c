package service

import (
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// Classification представляет результат классификации значения показателя
type Classification string

const (
	Normal   Classification = "normal"
	Abnormal Classification = "abnormal"
)

// String возвращает строковое представление классификации
func (c Classification) String() string {
	return string(c)
}

// IsAbnormal проверяет, является ли классификация аномальной
func (c Classification) IsAbnormal() bool {
	return c == Abnormal
}

// VitalClassifier классифицирует значения показателей как нормальные
// или аномальные по таблице диапазонов (Domain Service).
// Чистая функция без состояния и побочных эффектов.
type VitalClassifier struct {
	ranges valueobject.RangeTable
}

// NewVitalClassifier создает новый VitalClassifier
func NewVitalClassifier(ranges valueobject.RangeTable) *VitalClassifier {
	return &VitalClassifier{ranges: ranges}
}

// CanClassify проверяет, настроен ли для показателя нормальный диапазон.
// У производного MAP диапазона нет: его статус определяется парой давлений
func (c *VitalClassifier) CanClassify(vital valueobject.VitalType) bool {
	_, err := c.ranges.Ranges(vital)
	return err == nil
}

// Classify возвращает Abnormal, если значение вне нормального диапазона
// показателя (границы включаются)
func (c *VitalClassifier) Classify(vital valueobject.VitalType, value float64) Classification {
	ranges, err := c.ranges.Ranges(vital)
	if err != nil {
		return Abnormal
	}

	if ranges.Normal().Contains(value) {
		return Normal
	}
	return Abnormal
}

// ClassifyBloodPressure классифицирует пару давлений: Normal только когда
// ОБА компонента в своих нормальных диапазонах
func (c *VitalClassifier) ClassifyBloodPressure(systolic, diastolic float64) Classification {
	if c.Classify(valueobject.SystolicBP, systolic).IsAbnormal() {
		return Abnormal
	}
	if c.Classify(valueobject.DiastolicBP, diastolic).IsAbnormal() {
		return Abnormal
	}
	return Normal
}
