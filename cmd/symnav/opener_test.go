package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pableur/symnav/navigate"
	"github.com/pableur/symnav/symbol"
)

func TestEditorOpenerPrintsWithoutEditor(t *testing.T) {
	var out bytes.Buffer
	o := editorOpener{command: "", out: &out}
	loc := symbol.Location{Path: "/ws/a.py", DisplayPath: "a.py", Row: 3, Col: 4}

	require.NoError(t, o.Open(loc, navigate.OpenOptions{}))
	assert.Equal(t, "/ws/a.py:3:4\n", out.String())
}

func TestEditorOpenerPrintsTransientOpens(t *testing.T) {
	var out bytes.Buffer
	o := editorOpener{command: "definitely-an-editor", out: &out}
	loc := symbol.Location{Path: "/ws/a.py", DisplayPath: "a.py", Row: 3, Col: 4}

	require.NoError(t, o.Open(loc, navigate.OpenOptions{Transient: true}))
	assert.Equal(t, "/ws/a.py:3:4\n", out.String())
}

func TestStatusNotifier(t *testing.T) {
	var out bytes.Buffer
	statusNotifier{out: &out}.Status("Unable to find foo")
	assert.Equal(t, "Unable to find foo\n", out.String())
}
