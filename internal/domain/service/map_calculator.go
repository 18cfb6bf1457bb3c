package service

// MAPCalculator вычисляет среднее артериальное давление (Domain Service)
type MAPCalculator struct{}

// NewMAPCalculator создает новый MAPCalculator
func NewMAPCalculator() *MAPCalculator {
	return &MAPCalculator{}
}

// Compute возвращает MAP по стандартной клинической аппроксимации:
// diastolic + (systolic - diastolic) / 3
func (c *MAPCalculator) Compute(systolic, diastolic float64) float64 {
	return diastolic + (systolic-diastolic)/3
}
