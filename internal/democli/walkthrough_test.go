package democli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestWalkthroughGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewWalkthroughCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "walkthrough", buf.Bytes())
}

func TestWalkthroughRejectsArgs(t *testing.T) {
	cmd := NewWalkthroughCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
