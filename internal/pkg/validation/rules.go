package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern is the accepted email address format
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8

	// NameMinLength / NameMaxLength bound the display name
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}
