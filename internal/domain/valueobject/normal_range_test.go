package valueobject

import "testing"

func TestNewNormalRange_Validation(t *testing.T) {
	tests := []struct {
		name    string
		low     float64
		high    float64
		wantErr bool
	}{
		{"valid range", 60, 100, false},
		{"low equals high", 95, 95, true},
		{"low above high", 100, 60, true},
		{"negative bounds valid", -10, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNormalRange(tt.low, tt.high)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewNormalRange(%v, %v) error = %v, wantErr %v", tt.low, tt.high, err, tt.wantErr)
			}
		})
	}
}

func TestNormalRange_Contains(t *testing.T) {
	r, err := NewNormalRange(60, 100)
	if err != nil {
		t.Fatalf("NewNormalRange failed: %v", err)
	}

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"below low bound", 59.9, false},
		{"exactly low bound", 60, true},
		{"inside", 80, true},
		{"exactly high bound", 100, true},
		{"above high bound", 100.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.value); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalRange_Width(t *testing.T) {
	r, err := NewNormalRange(97.8, 99.1)
	if err != nil {
		t.Fatalf("NewNormalRange failed: %v", err)
	}

	got := r.Width()
	want := 99.1 - 97.8
	if got != want {
		t.Errorf("Width() = %v, want %v", got, want)
	}
}
