package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "app", false},
		{"valid with dash", "my-lib", false},
		{"valid with dot", "step.build.0", false},
		{"valid with spaces", "build docs", false},
		{"valid unicode", "модуль", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateEnvName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"HOME", false},
		{"_PRIVATE", false},
		{"DB_READY_2", false},
		{"", true},
		{"2FAST", true},
		{"WITH-DASH", true},
		{"WITH SPACE", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateEnvName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnvName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "build/out.o", false},
		{"absolute", "/tmp/ready", false},
		{"parent", "../shared/ready", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x07bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
