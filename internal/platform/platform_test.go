package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFromOS verifies the GOOS to Platform mapping
func TestFromOS(t *testing.T) {
	tests := []struct {
		goos    string
		want    Platform
		wantErr bool
	}{
		{"linux", Linux, false},
		{"windows", Windows, false},
		{"darwin", "", true},
		{"freebsd", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := FromOS(tt.goos)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromOS(%q) expected error, got %v", tt.goos, got)
				continue
			}
			if !IsUnsupportedError(err) {
				t.Errorf("FromOS(%q) error = %v, want UnsupportedError", tt.goos, err)
			}
			if !strings.Contains(err.Error(), tt.goos) {
				t.Errorf("FromOS(%q) error %q should name the OS", tt.goos, err.Error())
			}
			continue
		}
		if err != nil {
			t.Errorf("FromOS(%q) unexpected error: %v", tt.goos, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromOS(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

// TestIsUnsupportedError verifies error detection with wrapped errors
func TestIsUnsupportedError(t *testing.T) {
	_, err := FromOS("plan9")
	if !IsUnsupportedError(err) {
		t.Error("expected UnsupportedError for plan9")
	}
	if IsUnsupportedError(nil) {
		t.Error("nil should not be an UnsupportedError")
	}
	if IsUnsupportedError(os.ErrNotExist) {
		t.Error("os.ErrNotExist should not be an UnsupportedError")
	}
}

// TestExpandHome verifies tilde expansion behavior
func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.config/nvim", filepath.Join(home, ".config", "nvim")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~otheruser/stuff", "~otheruser/stuff"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Errorf("ExpandHome(%q) unexpected error: %v", tt.in, err)
			continue
		}
		// Normalize separators for comparison; expansion uses the OS separator.
		if filepath.ToSlash(got) != filepath.ToSlash(tt.want) {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestCurrentMatchesRuntime verifies Current agrees with FromOS on this host
func TestCurrentMatchesRuntime(t *testing.T) {
	p, err := Current()
	if err != nil {
		// Running on an OS outside the supported set; Current must say so.
		if !IsUnsupportedError(err) {
			t.Fatalf("Current() error = %v, want UnsupportedError", err)
		}
		return
	}
	if p != Windows && p != Linux {
		t.Errorf("Current() = %q, want windows or linux", p)
	}
}
