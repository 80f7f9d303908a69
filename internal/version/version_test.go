package version

import (
	"strings"
	"testing"
)

func TestGet_DefaultValues(t *testing.T) {
	if Get().Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestGet_Overrides(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version = " 1.2.3 "
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Get()
	if info.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", info.Version, "1.2.3")
	}
	if info.GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
	if info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", info.BuildDate)
	}

	Version = ""
	if got := Get().Version; got != "dev" {
		t.Errorf("empty Version resolves to %q, want dev", got)
	}
}

func TestColored(t *testing.T) {
	if got := Colored("0.1.0-dev", false); got != "0.1.0-dev" {
		t.Errorf("Colored without colour = %q", got)
	}
	got := Colored("0.1.0-dev", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored with colour = %q", got)
	}
	if got := Colored("nightly", true); got != "nightly" {
		t.Errorf("non-semver = %q", got)
	}
}
