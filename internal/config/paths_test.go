package config

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.pong/pong.db", filepath.Join(home, ".pong", "pong.db")},
		{"~", home},
		{"/var/lib/pong.db", "/var/lib/pong.db"},
		{"relative/pong.log", "relative/pong.log"},
		{"", ""},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
