// psyspy-server serves the game over SSH. Every connection gets its own
// world and plays independently.
//
//	go build -o psyspy-server ./cmd/server
//	./psyspy-server [--port 2222] [--key server_host_key]
//
// Then connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"psyspy/internal/game"
	"psyspy/internal/render"
	internalssh "psyspy/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH listen port")
	keyFile := flag.String("key", "server_host_key", "PEM host key path (generated when absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "err", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			playSession(s, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No client auth: suitable for a LAN toy server only.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	logger.Error("server stopped", "err", srv.ListenAndServe())
	os.Exit(1)
}

// termMu serializes os.Setenv("TERM") around screen creation, since sessions
// arrive concurrently and terminfo lookup reads the process environment.
var termMu sync.Mutex

// allowedTerms whitelists TERM values accepted from clients. Terminfo lookup
// resolves the value against the filesystem, so anything not on the list
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// playSession runs one complete game on an SSH session and blocks until the
// player quits or the connection drops.
func playSession(s gossh.Session, logger *slog.Logger) {
	logger = logger.With("remote", s.RemoteAddr().String())
	logger.Info("session opened")
	defer logger.Info("session closed")

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "a PTY is required; reconnect with: ssh -t")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			term = v
			break
		}
	}

	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	w := game.NewWorld(game.FloorXRad, game.FloorYRad)
	game.Setup(w)
	rng := mrand.New(mrand.NewSource(time.Now().UnixNano()))
	g := game.New(w, render.New(screen), rng, logger)
	if err := g.Run(screen); err != nil {
		logger.Error("game ended", "err", err)
	}
}

// loadOrCreateHostKey reads a PEM private key from path, generating and
// persisting a fresh ed25519 key when the file is missing or unparsable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("wrap host key: %w", err)
	}
	if pemBlock, err := xssh.MarshalPrivateKey(key, "psyspy server"); err == nil {
		// Best effort: a new key is generated next run if this fails.
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	return signer, nil
}
