// Package sanitizer strips markup from untrusted public input such as comments.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type ISanitizer interface {
	PlainText(input string) string
}

type sanitizer struct {
	policy *bluemonday.Policy
}

func New() ISanitizer {
	return &sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// maxPasses bounds how many entity-decoding rounds a single input may take.
const maxPasses = 4

// PlainText removes every HTML element and returns trimmed text. Entities are
// decoded for storage, and the decoded text goes through the policy again until
// it is stable so encoded markup cannot come back as live markup.
func (s *sanitizer) PlainText(input string) string {
	current := input
	for i := 0; i < maxPasses; i++ {
		escaped := s.policy.Sanitize(current)
		decoded := html.UnescapeString(escaped)
		if decoded == current {
			return strings.TrimSpace(decoded)
		}
		current = decoded
	}
	return strings.TrimSpace(s.policy.Sanitize(current))
}
