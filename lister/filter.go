package lister

import (
	"regexp"
	"strings"

	"github.com/erraggy/flist/flerrors"
	"github.com/erraggy/flist/walker"
)

// filter decides inclusion eligibility: an entry's type must be
// admitted by the mask and its base name must match the pattern when
// one is set. Inclusion is independent of descent — the walker decides
// descent on its own, so a directory excluded here is still traversed.
type filter struct {
	types walker.TypeMask
	re    *regexp.Regexp
}

// newFilter compiles the configured name pattern. A malformed pattern
// is fatal and reported before any traversal begins.
func newFilter(cfg *config) (*filter, error) {
	f := &filter{types: cfg.types}
	if cfg.pattern == "" {
		return f, nil
	}

	pat := cfg.pattern
	var re *regexp.Regexp
	var err error
	if cfg.dialect == DialectBasic {
		if !cfg.caseSensitive {
			pat = foldBasicPattern(pat)
		}
		re, err = regexp.CompilePOSIX(pat)
	} else {
		if !cfg.caseSensitive {
			pat = "(?i)" + pat
		}
		re, err = regexp.Compile(pat)
	}
	if err != nil {
		return nil, &flerrors.PatternError{Pattern: cfg.pattern, Dialect: string(cfg.dialect), Cause: err}
	}
	f.re = re
	return f, nil
}

// includes reports whether an entry of type t named name belongs in the
// list. The pattern is unanchored: it may match anywhere in the base
// name.
func (f *filter) includes(t walker.EntryType, name string) bool {
	if !f.types.Has(t) {
		return false
	}
	if f.re == nil {
		return true
	}
	return f.re.MatchString(name)
}

// foldBasicPattern rewrites pat so that [regexp.CompilePOSIX] matches
// ASCII letters case-insensitively, since the POSIX dialect has no
// in-pattern case flag. Letters outside bracket expressions become
// two-case bracket expressions, letters inside them gain their
// counterpart, and same-case ranges gain a swapped-case twin. Named
// classes and mixed-case ranges pass through untouched.
func foldBasicPattern(pat string) string {
	var b strings.Builder
	b.Grow(len(pat) * 2)
	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch {
		case c == '\\' && i+1 < len(pat):
			b.WriteByte(c)
			b.WriteByte(pat[i+1])
			i++
		case c == '[':
			i = foldBracket(&b, pat, i)
		case isASCIILetter(c):
			b.WriteByte('[')
			b.WriteByte(c | 0x20)
			b.WriteByte(c &^ 0x20)
			b.WriteByte(']')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// foldBracket folds the bracket expression opening at pat[open] and
// returns the index of its closing bracket, or the last consumed byte
// when the expression is unterminated.
func foldBracket(b *strings.Builder, pat string, open int) int {
	b.WriteByte('[')
	j := open + 1
	if j < len(pat) && pat[j] == '^' {
		b.WriteByte('^')
		j++
	}
	// A ']' in first position is a literal member.
	if j < len(pat) && pat[j] == ']' {
		b.WriteByte(']')
		j++
	}
	for j < len(pat) && pat[j] != ']' {
		switch {
		case pat[j] == '[' && j+1 < len(pat) && (pat[j+1] == ':' || pat[j+1] == '=' || pat[j+1] == '.'):
			// [:class:], [=equiv=], [.collating.]
			term := strings.Index(pat[j+2:], string(pat[j+1])+"]")
			if term < 0 {
				b.WriteString(pat[j:])
				return len(pat) - 1
			}
			end := j + 2 + term + 2
			b.WriteString(pat[j:end])
			j = end
		case j+2 < len(pat) && pat[j+1] == '-' && pat[j+2] != ']':
			lo, hi := pat[j], pat[j+2]
			b.WriteByte(lo)
			b.WriteByte('-')
			b.WriteByte(hi)
			if isASCIILetter(lo) && isASCIILetter(hi) && isUpperASCII(lo) == isUpperASCII(hi) {
				b.WriteByte(lo ^ 0x20)
				b.WriteByte('-')
				b.WriteByte(hi ^ 0x20)
			}
			j += 3
		case isASCIILetter(pat[j]):
			b.WriteByte(pat[j])
			b.WriteByte(pat[j] ^ 0x20)
			j++
		default:
			b.WriteByte(pat[j])
			j++
		}
	}
	if j < len(pat) {
		b.WriteByte(']')
	}
	return j
}

func isASCIILetter(c byte) bool {
	c |= 0x20
	return 'a' <= c && c <= 'z'
}

func isUpperASCII(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
