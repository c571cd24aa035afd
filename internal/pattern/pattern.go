// Package pattern compiles rule context expressions into anchored matchers.
// Expressions use a small regular subset (character classes, alternation,
// quantifiers); a left context is anchored at the end of the preceding
// text, a right context at the start of the following text. Patterns are
// compiled once at grammar-load time, never per phone.
package pattern

import (
	"regexp"

	"github.com/accentcoach/phonology-go/phonerr"
)

// Pattern is a compiled, anchored context matcher.
type Pattern struct {
	re  *regexp.Regexp
	raw string
}

// CompileSuffix compiles expr anchored at the end of its subject (left
// context: the expression must match a suffix of the preceding text).
func CompileSuffix(expr string) (*Pattern, error) {
	return compile(expr, "(?:"+expr+")$")
}

// CompilePrefix compiles expr anchored at the start of its subject (right
// context: the expression must match a prefix of the following text).
func CompilePrefix(expr string) (*Pattern, error) {
	return compile(expr, "^(?:"+expr+")")
}

func compile(raw, anchored string) (*Pattern, error) {
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, phonerr.Configf("context", "bad pattern %q: %v", raw, err)
	}
	return &Pattern{re: re, raw: raw}, nil
}

// Match reports whether the subject satisfies the anchored pattern. A nil
// Pattern is the unconditional context and matches everything.
func (p *Pattern) Match(s string) bool {
	if p == nil {
		return true
	}
	return p.re.MatchString(s)
}

// String returns the original, unanchored expression.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.raw
}
