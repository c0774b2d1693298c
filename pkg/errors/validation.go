package errors

import (
	"strings"
	"unicode"
)

// ValidateLayoutName validates a stored layout name for safety and
// correctness. It rejects names that could be used for path traversal when
// the file-backed store maps names to paths.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "layout name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "layout name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "layout name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "layout name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateItemID validates an item identifier arriving from a deserialized
// document. IDs must be non-empty, printable, and reasonably short.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeMissingID, "item id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidItem, "item id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains invalid control characters")
		}
	}
	return nil
}
