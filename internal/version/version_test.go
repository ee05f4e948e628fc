package version

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if BuildTime == "" {
		t.Error("BuildTime should be initialized")
	}
	if GitCommit == "" {
		t.Error("GitCommit should be initialized")
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "objdoc "+Version) {
		t.Errorf("String() = %q, want prefix %q", s, "objdoc "+Version)
	}
	if !strings.Contains(s, GitCommit) {
		t.Errorf("String() = %q should mention commit %q", s, GitCommit)
	}
}
