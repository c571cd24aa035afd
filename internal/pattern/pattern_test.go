package pattern

import (
	"errors"
	"testing"

	"github.com/accentcoach/phonology-go/phonerr"
)

func TestCompileSuffix(t *testing.T) {
	p, err := CompileSuffix("[aeiou]")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   string
		want bool
	}{
		{"ka", true},
		{"uste", true},
		{"kas", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.Match(tt.in); got != tt.want {
			t.Errorf("suffix match %q = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompilePrefix(t *testing.T) {
	p, err := CompilePrefix("[ptk]")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Match("ta") {
		t.Error("prefix should match ta")
	}
	if p.Match("at") {
		t.Error("prefix should not match at")
	}

	// End-of-word as a right context: only an empty remainder matches.
	eow, err := CompilePrefix("$")
	if err != nil {
		t.Fatal(err)
	}
	if !eow.Match("") {
		t.Error("$ should match empty remainder")
	}
	if eow.Match("o") {
		t.Error("$ should not match a non-empty remainder")
	}
}

func TestNilPatternMatchesAll(t *testing.T) {
	var p *Pattern
	if !p.Match("anything") || !p.Match("") {
		t.Error("nil pattern must match everything")
	}
}

func TestCompileError(t *testing.T) {
	_, err := CompileSuffix("[unclosed")
	if err == nil {
		t.Fatal("expected error for bad pattern")
	}
	var cfgErr *phonerr.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %T, want *phonerr.ConfigError", err)
	}
}
