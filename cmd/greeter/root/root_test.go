package root

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jag-main/go-dev-template/internal/greeting"
)

// executeCapture runs the CLI with args and returns its stdout.
func executeCapture(t *testing.T, args []string) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	require.NoError(t, Execute(args))

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestBareInvocationGreets(t *testing.T) {
	got := executeCapture(t, []string{})
	assert.Equal(t, greeting.Message+"\n", got)
}

func TestGreetSubcommand(t *testing.T) {
	got := executeCapture(t, []string{"greet"})
	assert.Equal(t, greeting.Message+"\n", got)
}

func TestGreetSubcommandRejectsArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"greet", "extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
