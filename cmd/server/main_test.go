package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		term    string
		allowed bool
	}{
		{"xterm-256color", true},
		{"tmux", true},
		{"linux", true},
		{"vt100", true},
		{"screen", true},
		{"rxvt-unicode-256color", true},
		{"evil-term", false},
		{"../../../etc/passwd", false},
		{"", false},
		{"xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			if got := allowedTerms[tc.term]; got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestHostKeyPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	logger := slog.New(slog.DiscardHandler)

	first, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	a := first.PublicKey().Marshal()
	b := second.PublicKey().Marshal()
	if !bytes.Equal(a, b) {
		t.Error("reloaded host key differs from the generated one")
	}
}

func TestHostKeyRegeneratedWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "host_key")
	logger := slog.New(slog.DiscardHandler)

	if err := os.WriteFile(path, []byte("not a pem key"), 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := loadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatalf("expected a fresh key over a corrupt file, got error: %v", err)
	}
	if signer == nil {
		t.Fatal("nil signer")
	}
}
