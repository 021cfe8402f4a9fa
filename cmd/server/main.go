// dungeonforge-server serves the interactive layout browser over SSH so
// a team can inspect generated dungeons without installing anything.
// Build:
//
//	go build -o dungeonforge-server ./cmd/server
//
// Usage:
//
//	./dungeonforge-server [--port 2222] [--key server_host_key] [--seed 1]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"dungeonforge/internal/dungeon"
	internalssh "dungeonforge/internal/ssh"
	"dungeonforge/internal/viewer"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	params := dungeon.DefaultParams()
	flag.Int64Var(&params.Seed, "seed", params.Seed, "initial seed shown to each client")
	flag.IntVar(&params.Width, "width", params.Width, "grid width in cells")
	flag.IntVar(&params.Height, "height", params.Height, "grid height in cells")
	flag.Parse()

	if err := params.Check(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, params)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; the browser is read-only and the
		// server is meant for trusted networks. Add gossh.PublicKeyAuth
		// for anything else.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("dungeonforge SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation, which tcell
// reads from the process environment.
var termMu sync.Mutex

// allowedTerms restricts client-supplied TERM values to known terminfo
// names; anything else falls back to xterm-256color.
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

// handleSession runs one browser session per SSH connection. It blocks
// until the client quits so the SSH channel stays open.
func handleSession(s gossh.Session, params dungeon.Params) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The browser requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			if t := env[5:]; allowedTerms[t] {
				term = t
			}
			break
		}
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	log.Printf("session from %s (%s)", s.RemoteAddr(), term)
	viewer.New(screen, params).Run()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates
// and persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dungeonforge server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
