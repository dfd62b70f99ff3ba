package opener

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCommand(t *testing.T) {
	url := "http://127.0.0.1:8000/static/meeting_1_summary.pdf"
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{url}},
		{"linux", "xdg-open", []string{url}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := openCommand(tt.goos, url)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}

	_, _, err := openCommand("plan9", url)
	assert.Error(t, err)
}

func TestClipboardCommand_LinuxFallbacks(t *testing.T) {
	only := func(available string) func(string) (string, error) {
		return func(name string) (string, error) {
			if name == available {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		}
	}

	name, _, err := clipboardCommand("linux", only("xclip"))
	require.NoError(t, err)
	assert.Equal(t, "xclip", name)

	name, args, err := clipboardCommand("linux", only("xsel"))
	require.NoError(t, err)
	assert.Equal(t, "xsel", name)
	assert.Equal(t, []string{"--clipboard", "--input"}, args)

	_, _, err = clipboardCommand("linux", only("none"))
	assert.Error(t, err)
}

func TestSystem_Open(t *testing.T) {
	var started *exec.Cmd
	s := &System{
		goos:  "linux",
		start: func(cmd *exec.Cmd) error { started = cmd; return nil },
	}

	require.NoError(t, s.Open(context.Background(), "http://x/a.pdf"))

	require.NotNil(t, started)
	assert.Equal(t, []string{"xdg-open", "http://x/a.pdf"}, started.Args)
}

func TestSystem_Open_LaunchFailure(t *testing.T) {
	s := &System{
		goos:  "darwin",
		start: func(*exec.Cmd) error { return errors.New("not found") },
	}

	err := s.Open(context.Background(), "http://x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch open")
}

func TestSystem_Copy(t *testing.T) {
	var input string
	s := &System{
		goos: "darwin",
		run: func(cmd *exec.Cmd) error {
			data, err := io.ReadAll(cmd.Stdin)
			input = string(data)
			return err
		},
	}

	require.NoError(t, s.Copy(context.Background(), "meeting summary"))
	assert.Equal(t, "meeting summary", input)
}

func TestNew(t *testing.T) {
	s := New()

	assert.NotEmpty(t, s.goos)
	assert.NotNil(t, s.start)
	assert.NotNil(t, s.run)
}
