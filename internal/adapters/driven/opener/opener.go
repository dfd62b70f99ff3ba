// Package opener launches platform tools to open URLs and use the clipboard.
package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/minutes/internal/core/ports/driven"
)

// Platform names as reported by runtime.GOOS.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

var (
	_ driven.URLOpener = (*System)(nil)
	_ driven.Clipboard = (*System)(nil)
)

// System opens URLs and copies text with the host's own tools.
type System struct {
	goos     string
	lookPath func(string) (string, error)
	start    func(cmd *exec.Cmd) error
	run      func(cmd *exec.Cmd) error
}

// New returns a System for the running platform.
func New() *System {
	return &System{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    (*exec.Cmd).Start,
		run:      (*exec.Cmd).Run,
	}
}

// Open opens url in the default browser or PDF viewer.
func (s *System) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args, err := openCommand(s.goos, url)
	if err != nil {
		return err
	}
	// Not tied to ctx: the viewer must survive the caller.
	cmd := exec.Command(name, args...)
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	// The handler outlives this call; reap it in the background.
	if cmd.Process != nil {
		go func() { _ = cmd.Wait() }()
	}
	return nil
}

// Copy replaces the clipboard contents with text.
func (s *System) Copy(ctx context.Context, text string) error {
	name, args, err := clipboardCommand(s.goos, s.lookPath)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := s.run(cmd); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func openCommand(goos, url string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{url}, nil
	case osLinux:
		return "xdg-open", []string{url}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func clipboardCommand(goos string, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "pbcopy", nil, nil
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := lookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}, nil
		}
		if _, err := lookPath("xsel"); err == nil {
			return "xsel", []string{"--clipboard", "--input"}, nil
		}
		return "", nil, fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return "cmd", []string{"/c", "clip"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
