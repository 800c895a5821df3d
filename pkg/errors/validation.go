package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds vertex names read from manifests.
const maxNameLength = 256

// ValidateVertexName validates a vertex name declared in a manifest.
//
// The rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters or null bytes
//   - Maximum length of 256 bytes
//
// The graph engine itself accepts any comparable name; these rules only apply
// to names that come from files and the command line.
func ValidateVertexName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "vertex name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "vertex name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "vertex name %q contains control characters", name)
		}
	}

	return nil
}

// envNameRegex matches portable environment variable names.
var envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateEnvName validates the variable named by a ready_env payload.
func ValidateEnvName(name string) error {
	if !envNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid environment variable name: %q", name)
	}
	return nil
}

// ValidatePath validates a file path named by a ready_file payload.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidName, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidName, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "path contains invalid characters")
		}
	}

	return nil
}
