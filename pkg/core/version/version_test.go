package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if Version == "" {
		t.Fatal("Version is empty")
	}
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{Name, Version, GitCommit, BuildDate} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"name", Name},
		{"version", Version},
		{"git_commit", GitCommit},
		{"build_date", BuildDate},
	}

	info := Info()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if info[tt.key] != tt.expected {
				t.Errorf("Info()[%q] = %q, want %q", tt.key, info[tt.key], tt.expected)
			}
		})
	}
}
