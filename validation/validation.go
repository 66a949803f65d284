package validation

import (
	"strings"
)

// IsBlankQuestion reports whether a question is empty once surrounding
// whitespace is removed.
func IsBlankQuestion(question string) bool {
	return strings.TrimSpace(question) == ""
}

// IsSelectStatement checks that the statement starts with "select",
// ignoring case and surrounding whitespace.
//
// This is a prefix check only. The statement is not parsed, so a SELECT
// followed by a second statement or calling a function with side effects
// still passes.
func IsSelectStatement(sql string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(sql))
	return strings.HasPrefix(trimmed, "select")
}
