package mask

import "testing"

const phone = Template("(___) ___-____")

func digits(t *testing.T) *Compiled {
	t.Helper()
	c, err := Compile(Config{Mask: phone, Pattern: "[0-9]", Strict: true})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return c
}

func TestMaskPhone(t *testing.T) {
	got := Mask(phone, '_', true, "5551234567")
	if got != "(555) 123-4567" {
		t.Errorf("expected '(555) 123-4567', got %q", got)
	}
}

func TestUnmaskPhone(t *testing.T) {
	c := digits(t)
	got := c.Value("(555) 123-4567")
	if got != "5551234567" {
		t.Errorf("expected '5551234567', got %q", got)
	}
}

func TestMaskPartialInput(t *testing.T) {
	// Interleaving stops with the input: no trailing separators or fill.
	got := Mask(phone, '_', true, "555")
	if got != "(555" {
		t.Errorf("expected '(555', got %q", got)
	}
}

func TestMaskEmptyInput(t *testing.T) {
	if got := Mask(phone, '_', true, ""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestMaskEmptyTemplate(t *testing.T) {
	// Empty template degenerates to pass-through regardless of strictness.
	if got := Mask("", '_', false, "abc"); got != "abc" {
		t.Errorf("non-strict: expected 'abc', got %q", got)
	}
	if got := Mask("", '_', true, "abc"); got != "abc" {
		t.Errorf("strict: expected 'abc', got %q", got)
	}
}

func TestMaskStrictCapsLength(t *testing.T) {
	got := Mask(phone, '_', true, "55512345679999")
	if len(got) != len(phone) {
		t.Errorf("strict output length %d exceeds template length %d", len(got), len(phone))
	}
	if got != "(555) 123-4567" {
		t.Errorf("expected '(555) 123-4567', got %q", got)
	}
}

func TestMaskNonStrictOverflow(t *testing.T) {
	got := Mask(phone, '_', false, "555123456799")
	if got != "(555) 123-456799" {
		t.Errorf("expected '(555) 123-456799', got %q", got)
	}
}

func TestUnmaskNonStrictOverflow(t *testing.T) {
	c, err := Compile(Config{Mask: phone, Pattern: "[0-9]", Strict: false})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// Tail beyond the template is kept verbatim, even non-matching chars.
	got := c.Value("(555) 123-4567xy")
	if got != "5551234567xy" {
		t.Errorf("expected '5551234567xy', got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	c := digits(t)
	inputs := []string{"", "5", "555", "55512", "5551234567"}
	for _, in := range inputs {
		if got := c.Value(Mask(phone, '_', true, in)); got != in {
			t.Errorf("round trip of %q: got %q", in, got)
		}
	}
}

func TestRemaskIdempotent(t *testing.T) {
	c := digits(t)
	for _, in := range []string{"(555", "(555) 1", "(555) 123-4567"} {
		once := c.Remask(in)
		twice := c.Remask(once)
		if once != twice {
			t.Errorf("remask of %q drifted: %q then %q", in, once, twice)
		}
	}
}

func TestCompileBadPattern(t *testing.T) {
	if _, err := Compile(Config{Pattern: "[0-9"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := Normalize(Config{})
	if cfg.Pattern != "." {
		t.Errorf("expected match-any pattern, got %q", cfg.Pattern)
	}
	if cfg.Fill != '_' {
		t.Errorf("expected fill '_', got %q", cfg.Fill)
	}
	if cfg.Mask != "" {
		t.Errorf("expected empty mask, got %q", cfg.Mask)
	}
}

func TestMatchAnyPattern(t *testing.T) {
	c, err := Compile(Config{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !c.Match('x') || !c.Match('9') || !c.Match(' ') {
		t.Error("default pattern should accept any character")
	}
}

func TestPlaceholders(t *testing.T) {
	if got := Placeholders(phone, '_'); got != 10 {
		t.Errorf("expected 10 placeholders, got %d", got)
	}
	if got := Placeholders("", '_'); got != 0 {
		t.Errorf("expected 0 placeholders, got %d", got)
	}
}

func TestSeparatorRuns(t *testing.T) {
	// "(___) ___-____": literals at 0, 4, 5, 9.
	if !IsLiteral(phone, '_', 0) || !IsLiteral(phone, '_', 4) || !IsLiteral(phone, '_', 9) {
		t.Error("expected literal positions at 0, 4, 9")
	}
	if IsLiteral(phone, '_', 1) || IsLiteral(phone, '_', 14) || IsLiteral(phone, '_', -1) {
		t.Error("placeholder or out-of-range positions reported literal")
	}

	// Run ") " spans [4,6).
	if got := RunStart(phone, '_', 6); got != 4 {
		t.Errorf("RunStart(6): expected 4, got %d", got)
	}
	if got := RunEnd(phone, '_', 4); got != 6 {
		t.Errorf("RunEnd(4): expected 6, got %d", got)
	}

	// Walks clamp at template boundaries.
	if got := RunStart(phone, '_', 3); got != 3 {
		t.Errorf("RunStart(3): expected 3, got %d", got)
	}
	if got := RunStart(phone, '_', 1); got != 0 {
		t.Errorf("RunStart(1) over leading '(': expected 0, got %d", got)
	}
	if got := RunStart("--__", '-', 2); got != 0 {
		t.Errorf("RunStart at leading run: expected 0, got %d", got)
	}
	if got := RunEnd("__--", '_', 2); got != 4 {
		t.Errorf("RunEnd at trailing run: expected 4, got %d", got)
	}
}
