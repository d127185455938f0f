package editor

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpener(available ...string) (*Opener, *[]string) {
	var ran []string
	return &Opener{
		lookPath: func(file string) (string, error) {
			for _, a := range available {
				if a == file {
					return "/usr/bin/" + file, nil
				}
			}
			return "", exec.ErrNotFound
		},
		run: func(cmd *exec.Cmd) error {
			ran = append(ran, cmd.Args...)
			return nil
		},
	}, &ran
}

func clearEditorEnv(t *testing.T) {
	t.Setenv(EnvEditor, "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
}

func newTestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	return path
}

func TestOpener_Open_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		cliEditor string
		env       map[string]string
		want      string
	}{
		{name: "flag wins", cliEditor: "hx", env: map[string]string{EnvEditor: "emacs", "EDITOR": "vim"}, want: "hx"},
		{name: "takipcim editor", env: map[string]string{EnvEditor: "emacs", "VISUAL": "code"}, want: "emacs"},
		{name: "visual", env: map[string]string{"VISUAL": "code", "EDITOR": "vim"}, want: "code"},
		{name: "editor", env: map[string]string{"EDITOR": "micro"}, want: "micro"},
		{name: "platform default", want: defaultEditors[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEditorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := newTestFile(t)
			o, ran := newTestOpener(defaultEditors...)

			require.NoError(t, o.Open(path, tt.cliEditor))

			require.NotEmpty(t, *ran)
			assert.Equal(t, tt.want, (*ran)[0])
			assert.Equal(t, path, (*ran)[len(*ran)-1])
		})
	}
}

func TestOpener_Open_SplitsEditorArguments(t *testing.T) {
	clearEditorEnv(t)
	t.Setenv("VISUAL", "code --wait")
	path := newTestFile(t)
	o, ran := newTestOpener()

	require.NoError(t, o.Open(path, ""))

	assert.Equal(t, []string{"code", "--wait", path}, *ran)
}

func TestOpener_Open_NoEditor(t *testing.T) {
	clearEditorEnv(t)
	o, _ := newTestOpener()

	err := o.Open(newTestFile(t), "")

	assert.ErrorContains(t, err, "no suitable editor found")
}

func TestOpener_Open_MissingFile(t *testing.T) {
	o, _ := newTestOpener()

	err := o.Open(filepath.Join(t.TempDir(), "missing.json"), "vim")

	assert.ErrorContains(t, err, "path does not exist")
}

func TestOpener_Open_EditorFails(t *testing.T) {
	o, _ := newTestOpener()
	o.run = func(*exec.Cmd) error { return errors.New("exit status 1") }

	err := o.Open(newTestFile(t), "vim")

	assert.ErrorContains(t, err, "editor vim failed")
}
