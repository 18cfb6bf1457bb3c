package valueobject

import "errors"

// NormalRange представляет диапазон значений показателя с включающими границами (Value Object)
// Иммутабельный объект
type NormalRange struct {
	low  float64
	high float64
}

// NewNormalRange создает новый NormalRange с валидацией
func NewNormalRange(low, high float64) (NormalRange, error) {
	if low >= high {
		return NormalRange{}, errors.New("range low bound must be less than high bound")
	}

	return NormalRange{
		low:  low,
		high: high,
	}, nil
}

// Low возвращает нижнюю границу
func (r NormalRange) Low() float64 {
	return r.low
}

// High возвращает верхнюю границу
func (r NormalRange) High() float64 {
	return r.high
}

// Contains проверяет, попадает ли значение в диапазон (границы включаются)
func (r NormalRange) Contains(value float64) bool {
	return value >= r.low && value <= r.high
}

// Width возвращает ширину диапазона
func (r NormalRange) Width() float64 {
	return r.high - r.low
}
