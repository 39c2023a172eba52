package main

import (
	"bytes"
	"testing"

	"github.com/Carmen-Shannon/oxy-solar/config"
	"github.com/Carmen-Shannon/oxy-solar/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	printKeys(&buf, config.Default())
	out := buf.String()

	for _, b := range camera.DefaultBindings() {
		assert.Contains(t, out, b.Key.Name())
		assert.Contains(t, out, b.Action.String())
	}
	assert.Contains(t, out, "recenter camera")
	assert.Contains(t, out, "double animation speed")
}

func TestConfigCommandWritesLoadableFile(t *testing.T) {
	t.Chdir(t.TempDir())
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	cfg := &config.Config{}
	require.NoError(t, config.Decode(buf.Bytes(), cfg))
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, config.Default().Content.Bodies, cfg.Content.Bodies)
	assert.Len(t, cfg.Overlay.Panels, 2)
}
