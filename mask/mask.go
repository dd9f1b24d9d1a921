// Package mask transforms between masked display strings and the logical
// values a user actually typed, given a template of literal separators and
// placeholder positions.
package mask

import (
	"fmt"
	"regexp"
)

// DefaultFill is the template character marking a placeholder position.
const DefaultFill = '_'

// Template is an ordered sequence of characters. A position equal to the
// configured fill symbol is a placeholder; any other character is a literal
// separator emitted verbatim into the display string.
type Template string

// Config describes how a single field is masked. The zero value means
// "no masking": Normalize fills in the documented defaults.
type Config struct {
	Mask    Template
	Pattern string // character-class regexp accepted at placeholder positions
	Strict  bool   // cap display length at template length
	Fill    byte   // placeholder symbol, DefaultFill when zero
}

// Normalize returns cfg with defaults substituted for unset values:
// empty mask, match-any pattern, fill '_'. Strict is left as given; callers
// that want the default (true) set it before calling.
func Normalize(cfg Config) Config {
	if cfg.Pattern == "" {
		cfg.Pattern = "."
	}
	if cfg.Fill == 0 {
		cfg.Fill = DefaultFill
	}
	return cfg
}

// Compiled is a Config with its acceptance pattern compiled once, so the
// per-keystroke paths never touch the regexp package.
type Compiled struct {
	Config
	matcher *regexp.Regexp
}

// Compile normalizes cfg and compiles its pattern. A malformed pattern is a
// configuration error and is surfaced immediately rather than at first use.
func Compile(cfg Config) (*Compiled, error) {
	cfg = Normalize(cfg)
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling mask pattern %q: %w", cfg.Pattern, err)
	}
	return &Compiled{Config: cfg, matcher: re}, nil
}

// Match reports whether a single character is accepted by the pattern.
func (c *Compiled) Match(ch byte) bool {
	return c.matcher.Match([]byte{ch})
}

// Mask interleaves logical into the template: literal positions emit the
// template character, placeholder positions consume the next logical
// character. Interleaving stops once logical is exhausted, so output never
// carries trailing separators or fill padding. In strict mode output never
// exceeds the template length; otherwise overflow beyond the template is
// appended verbatim.
func Mask(t Template, fill byte, strict bool, logical string) string {
	if len(t) == 0 {
		// No template degenerates to pass-through.
		return logical
	}
	out := make([]byte, 0, len(t)+len(logical))
	j := 0
	for i := 0; i < len(t) && j < len(logical); i++ {
		if t[i] != fill {
			out = append(out, t[i])
			continue
		}
		out = append(out, logical[j])
		j++
	}
	if !strict && j < len(logical) {
		out = append(out, logical[j:]...)
	}
	return string(out)
}

// Unmask extracts the logical value from a display string: characters up to
// the template length are kept only when they match the pattern. Separators
// placed by the template are expected not to match and drop out without any
// explicit bookkeeping. When not strict, the display's tail beyond the
// template length is appended unmodified.
func Unmask(t Template, c *Compiled, strict bool, display string) string {
	if len(t) == 0 {
		return display
	}
	n := len(display)
	if len(t) < n {
		n = len(t)
	}
	out := make([]byte, 0, len(display))
	for i := 0; i < n; i++ {
		if c.Match(display[i]) {
			out = append(out, display[i])
		}
	}
	if !strict && len(display) > len(t) {
		out = append(out, display[len(t):]...)
	}
	return string(out)
}

// Remask is the key-up normalization step: unmask then mask again, yielding
// a display string consistent with the template. Idempotent over strings
// already produced by Mask.
func (c *Compiled) Remask(display string) string {
	return Mask(c.Mask, c.Fill, c.Strict, Unmask(c.Mask, c, c.Strict, display))
}

// Value extracts the logical value of a display string under this config.
func (c *Compiled) Value(display string) string {
	return Unmask(c.Mask, c, c.Strict, display)
}

// Placeholders counts the placeholder positions in t.
func Placeholders(t Template, fill byte) int {
	n := 0
	for i := 0; i < len(t); i++ {
		if t[i] == fill {
			n++
		}
	}
	return n
}

// IsLiteral reports whether template position i is a literal separator.
// Positions outside the template are not literals.
func IsLiteral(t Template, fill byte, i int) bool {
	return i >= 0 && i < len(t) && t[i] != fill
}

// RunStart walks backward from position i over a contiguous separator run
// and returns the index of its first separator. Clamped at 0.
func RunStart(t Template, fill byte, i int) int {
	for i > 0 && IsLiteral(t, fill, i-1) {
		i--
	}
	return i
}

// RunEnd walks forward from position i over a contiguous separator run and
// returns the index just past its last separator. Clamped at len(t).
func RunEnd(t Template, fill byte, i int) int {
	for i < len(t) && IsLiteral(t, fill, i) {
		i++
	}
	return i
}
