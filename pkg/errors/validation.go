package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds type ids, model names and node ids.
const maxIdentifierLength = 128

// ValidateName checks a model name or category for safety.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
//   - No ':' (it separates node and port in port references)
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}

	if len(name) > maxIdentifierLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", kind, maxIdentifierLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", kind)
		}
	}

	if strings.Contains(name, ":") {
		return New(ErrCodeInvalidInput, "%s cannot contain ':': %q", kind, name)
	}

	return nil
}

// typeIDRegex matches data type identifiers such as "integer" or "vec3f".
var typeIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// ValidateTypeID validates a data type identifier.
func ValidateTypeID(id string) error {
	if err := ValidateName("type id", id); err != nil {
		return err
	}

	if !typeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid type id: %q", id)
	}

	return nil
}
