package domain

import "testing"

func TestTokenizerHazard(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		hazard bool
	}{
		{name: "plain source", text: "package p\n", hazard: false},
		{name: "leading byte order mark", text: "\ufeffpackage p\n", hazard: false},
		{name: "byte order mark later", text: "package p\n// \ufeff\n", hazard: true},
		{name: "nul byte", text: "package p\n\x00", hazard: true},
		{name: "empty", text: "", hazard: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, got := tokenizerHazard(tt.text)
			if got != tt.hazard {
				t.Fatalf("tokenizerHazard(%q) = %v, want %v", tt.text, got, tt.hazard)
			}

			if got && reason == "" {
				t.Errorf("expected a reason for %q", tt.text)
			}
		})
	}
}
