package uuid

import (
	"regexp"
	"testing"
)

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewV7_Format(t *testing.T) {
	t.Parallel()

	u := NewV7()
	if !uuidRe.MatchString(u.String()) {
		t.Fatalf("UUID %q does not match v7 format", u.String())
	}
}

func TestNewV7_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s := NewV7().String()
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate UUID generated: %s", s)
		}
		seen[s] = struct{}{}
	}
}

func TestNewV7_TimestampOrdered(t *testing.T) {
	t.Parallel()

	// v7 UUIDs generated in different milliseconds sort lexicographically.
	a := NewV7().String()
	b := NewV7().String()
	if a[:8] > b[:8] {
		t.Fatalf("expected non-decreasing timestamp prefix: %s then %s", a, b)
	}
}
