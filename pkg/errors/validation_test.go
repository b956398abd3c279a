package errors

import "testing"

func TestValidateHeight(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"reference default", 10, false},
		{"max", MaxHeight, false},

		{"negative", -1, true},
		{"large negative", -1000, true},
		{"over max", MaxHeight + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeight(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHeight(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidHeight) {
				t.Errorf("ValidateHeight(%d) code = %q, want %q", tt.input, GetCode(err), ErrCodeInvalidHeight)
			}
		})
	}
}

func TestValidateFillRune(t *testing.T) {
	tests := []struct {
		name    string
		input   rune
		wantErr bool
	}{
		{"star", '*', false},
		{"pipe", '|', false},
		{"hash", '#', false},
		{"letter", 'A', false},
		{"narrow unicode", '§', false},

		{"space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"null byte", '\x00', true},
		{"control char", '\x1b', true},
		{"wide rune", '木', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFillRune(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFillRune(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRune) {
				t.Errorf("ValidateFillRune(%q) code = %q, want %q", tt.input, GetCode(err), ErrCodeInvalidRune)
			}
		})
	}
}
