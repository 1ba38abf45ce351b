// Package glob implements shell-style wildcard matching on plain strings.
//
// Supported syntax is the classic fnmatch set: '*' matches any run of
// characters, '?' matches exactly one character and '[...]' matches one
// character from a class ('[!...]' negates it). Separators get no special
// treatment, so the result does not depend on the host operating system.
package glob

import (
	"regexp"
	"strings"
)

// Pattern is a compiled glob. The zero Pattern matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// Compile translates a glob into a matcher. It never fails: a character
// class left empty once reversed ranges such as "z-a" are dropped matches
// no character, and any pattern the translation cannot express matches
// no name at all.
func Compile(pattern string) Pattern {
	re, err := regexp.Compile(`(?s)\A` + translate(pattern) + `\z`)
	if err != nil {
		return Pattern{}
	}
	return Pattern{re: re}
}

// Match reports whether name matches the pattern as a whole.
func (p Pattern) Match(name string) bool {
	return p.re != nil && p.re.MatchString(name)
}

// CompileAll compiles every pattern, preserving order.
func CompileAll(patterns []string) []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Compile(p))
	}
	return out
}

// MatchAny reports whether name matches at least one pattern.
func MatchAny(patterns []Pattern, name string) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// translate converts a glob to a regular expression body.
func translate(pat string) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		if next, ok := appendClass(pat, i, &b); ok {
			i = next
			continue
		}

		switch pat[i] {
		case '*':
			// Consecutive stars are equivalent to one.
			for i+1 < len(pat) && pat[i+1] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(pat[i : i+1]))
		}
	}

	return b.String()
}

// appendClass writes a bracket expression starting at pat[start] and
// returns the index of its closing bracket. An unterminated '[' is not a
// class and is left for the caller to emit literally.
func appendClass(pat string, start int, b *strings.Builder) (int, bool) {
	if pat[start] != '[' {
		return start, false
	}

	end := classEnd(pat, start)
	if end < 0 {
		return start, false
	}

	idx := start + 1
	negate := pat[idx] == '!'
	if negate {
		idx++
	}

	var items strings.Builder
	body := []rune(pat[idx:end])
	for j := 0; j < len(body); j++ {
		if j+2 < len(body) && body[j+1] == '-' {
			lo, hi := body[j], body[j+2]
			j += 2
			if lo > hi {
				continue
			}
			writeClassRune(&items, lo)
			items.WriteByte('-')
			writeClassRune(&items, hi)
			continue
		}
		writeClassRune(&items, body[j])
	}

	switch {
	case items.Len() > 0 && negate:
		b.WriteString("[^" + items.String() + "]")
	case items.Len() > 0:
		b.WriteString("[" + items.String() + "]")
	case negate:
		b.WriteString(`.`)
	default:
		b.WriteString(`[^\x00-\x{10FFFF}]`)
	}
	return end, true
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', '[', ']', '^', '-':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// classEnd locates the bracket closing the class opened at start, or -1.
func classEnd(pat string, start int) int {
	idx := start + 1
	if idx < len(pat) && pat[idx] == '!' {
		idx++
	}
	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}
	return -1
}
