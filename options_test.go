package oxmsg

import "testing"

func TestEnumerationLimit(t *testing.T) {
	opts := ParseOptions{MaxEnumeration: 3}
	if got := opts.enumerationLimit(10); got != 3 {
		t.Fatalf("enumerationLimit(10) = %d, want 3", got)
	}
	if got := opts.enumerationLimit(2); got != 2 {
		t.Fatalf("enumerationLimit(2) = %d, want 2", got)
	}

	unbounded := ParseOptions{}
	if got := unbounded.enumerationLimit(1000); got != 1000 {
		t.Fatalf("unbounded enumerationLimit(1000) = %d, want 1000", got)
	}
}

func TestParseOptionsWithDefaults(t *testing.T) {
	got := ParseOptions{}.withDefaults()
	if got.MaxEnumeration != defaultMaxEnumeration {
		t.Fatalf("MaxEnumeration = %d, want %d", got.MaxEnumeration, defaultMaxEnumeration)
	}

	explicit := ParseOptions{MaxEnumeration: 5}.withDefaults()
	if explicit.MaxEnumeration != 5 {
		t.Fatalf("MaxEnumeration = %d, want 5 (explicit choice must not be overridden)", explicit.MaxEnumeration)
	}
}
