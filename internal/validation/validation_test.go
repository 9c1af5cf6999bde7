package validation

import "testing"

func TestValidRate(t *testing.T) {
	tests := []struct {
		name string
		rate int16
		want bool
	}{
		{"lower bound", 1, true},
		{"upper bound", 10, true},
		{"middle", 5, true},
		{"zero", 0, false},
		{"above range", 11, false},
		{"negative", -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidRate(tt.rate); got != tt.want {
				t.Errorf("ValidRate(%d) = %v, want %v", tt.rate, got, tt.want)
			}
		})
	}
}

func TestValidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int32
		want     bool
	}{
		{"one", 1, true},
		{"many", 42, true},
		{"storage upper bound", 32767, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"above storage bound", 32768, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidQuantity(tt.quantity); got != tt.want {
				t.Errorf("ValidQuantity(%d) = %v, want %v", tt.quantity, got, tt.want)
			}
		})
	}
}

func TestValidPriceCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  bool
	}{
		{"positive", 1250, true},
		{"one cent", 1, true},
		{"zero", 0, false},
		{"negative", -100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPriceCents(tt.cents); got != tt.want {
				t.Errorf("ValidPriceCents(%d) = %v, want %v", tt.cents, got, tt.want)
			}
		})
	}
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"simple", "desserts", true},
		{"with hyphen", "main-courses", true},
		{"with digits", "top-10", true},
		{"empty", "", false},
		{"leading hyphen", "-desserts", false},
		{"trailing hyphen", "desserts-", false},
		{"uppercase", "Desserts", false},
		{"space", "main courses", false},
		{"unicode", "десерты", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSlug(tt.slug); got != tt.want {
				t.Errorf("ValidSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}
