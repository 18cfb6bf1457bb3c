package valueobject

import "testing"

func TestVitalType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		vital   VitalType
		wantErr bool
	}{
		{"heart rate", HeartRate, false},
		{"spo2", SpO2, false},
		{"map", MeanArterialPressure, false},
		{"unknown", VitalType("respiratory_rate"), true},
		{"empty", VitalType(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vital.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVitalType_IsTracked(t *testing.T) {
	tracked := map[VitalType]bool{
		HeartRate:            true,
		SpO2:                 true,
		MeanArterialPressure: true,
		SystolicBP:           false,
		DiastolicBP:          false,
		Temperature:          false,
	}

	for vital, want := range tracked {
		if got := vital.IsTracked(); got != want {
			t.Errorf("IsTracked(%q) = %v, want %v", vital, got, want)
		}
	}
}

func TestGeneratedVitals_ExcludesMAP(t *testing.T) {
	for _, vital := range GeneratedVitals() {
		if vital == MeanArterialPressure {
			t.Error("GeneratedVitals should not include MAP")
		}
	}

	if len(GeneratedVitals()) != 5 {
		t.Errorf("GeneratedVitals count = %d, want 5", len(GeneratedVitals()))
	}
}
