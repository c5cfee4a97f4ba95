// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Tagging operations
	OpApplyTags Op = "apply tags"
	OpOpenTags  Op = "open tag container"
	OpSaveTags  Op = "save tag container"

	// Selection operations
	OpAddPaths Op = "add paths to selection"
	OpDiscover Op = "discover audio files"

	// Recent-directory operations
	OpRecentLoad Op = "load recent directories"
	OpRecentSave Op = "save recent directories"

	// Initialization
	OpLoadConfig Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
