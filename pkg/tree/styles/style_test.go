package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/tannenbaum/pkg/errors"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", NamePlain, false},
		{"festive", NameFestive, false},
		{"unknown", "neon", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := For(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("For(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("For(%q) code = %q, want %q", tt.input, errors.GetCode(err), errors.ErrCodeInvalidStyle)
				}
				return
			}
			if s == nil {
				t.Fatalf("For(%q) returned nil style", tt.input)
			}
		})
	}
}

func TestPlainIsIdentity(t *testing.T) {
	p := Plain{}
	for _, row := range []string{"  *", "*****", "  |", ""} {
		if got := p.Branch(row); got != row {
			t.Errorf("Plain.Branch(%q) = %q", row, got)
		}
		if got := p.Trunk(row); got != row {
			t.Errorf("Plain.Trunk(%q) = %q", row, got)
		}
	}
}

func TestFestivePreservesVisibleText(t *testing.T) {
	f := Festive{}
	for _, row := range []string{"  *", "*****", "  |"} {
		if got := ansi.Strip(f.Branch(row)); got != row {
			t.Errorf("Festive.Branch(%q) stripped = %q", row, got)
		}
		if got := ansi.Strip(f.Trunk(row)); got != row {
			t.Errorf("Festive.Trunk(%q) stripped = %q", row, got)
		}
	}
}
