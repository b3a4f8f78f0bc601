package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Commit
	Commit = "abc1234"
	defer func() { Commit = old }()

	if got := String(); !strings.Contains(got, "commit: abc1234") {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version {{.Version}}") || !strings.Contains(got, "abc1234") {
		t.Errorf("Template() = %q", got)
	}
}
