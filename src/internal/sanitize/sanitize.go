// Package sanitize checks free-text answers before they become book fields.
// Answers are never rewritten beyond trimming; bad input is rejected so the
// caller can ask again.
package sanitize

import (
	"fmt"
	"strconv"
	"strings"

	"library/src/internal/liberr"
)

// MaxField is the longest accepted title, author or genre, in bytes.
const MaxField = 512

// Text returns s without surrounding whitespace. It fails with a
// ValidationError when s is longer than MaxField or holds control characters
// other than tab.
func Text(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxField {
		return "", liberr.NewValidationError(field, fmt.Sprintf("(%d bytes)", len(s)),
			fmt.Sprintf("must be at most %d bytes", MaxField))
	}
	if i := strings.IndexFunc(s, isControl); i >= 0 {
		r := []rune(s[i:])[0]
		return "", liberr.NewValidationError(field, strconv.QuoteRune(r), "must not contain control characters")
	}
	return s, nil
}

func isControl(r rune) bool {
	return r != '\t' && (r < 0x20 || r == 0x7f)
}
