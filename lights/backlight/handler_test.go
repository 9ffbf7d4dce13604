package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tr4cks/lights/lights"
)

func initDevice(t *testing.T, maxBrightness string) string {
	t.Helper()
	dir := t.TempDir()
	if maxBrightness != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(maxBrightness), 0644))
	}
	return dir
}

func newHandler(t *testing.T, dir string) *Handler {
	t.Helper()
	handler := New(zerolog.Nop())
	require.NoError(t, handler.Init(map[string]interface{}{"path": dir}))
	return handler
}

func TestInit(t *testing.T) {
	t.Run("defaults to the hardware path", func(t *testing.T) {
		handler := New(zerolog.Nop())

		require.NoError(t, handler.Init(nil))

		assert.Equal(t, DefaultPath, handler.Config.Path)
	})

	t.Run("accepts a configured path", func(t *testing.T) {
		dir := t.TempDir()
		handler := newHandler(t, dir)

		assert.Equal(t, dir, handler.Config.Path)
	})
}

func TestApply(t *testing.T) {
	t.Run("writes the scaled brightness", func(t *testing.T) {
		dir := initDevice(t, "128")
		handler := newHandler(t, dir)

		handler.Apply(lights.State{Color: 0xFF00FF00})

		raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
		require.NoError(t, err)
		assert.Equal(t, "74", string(raw), "luma 149 scaled into [0, 128]")
	})

	t.Run("off state writes zero", func(t *testing.T) {
		dir := initDevice(t, "255")
		handler := newHandler(t, dir)

		handler.Apply(lights.StateOff)

		raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
		require.NoError(t, err)
		assert.Equal(t, "0", string(raw))
	})

	t.Run("no writes without a readable max_brightness", func(t *testing.T) {
		dir := initDevice(t, "")
		handler := newHandler(t, dir)

		handler.Apply(lights.State{Color: 0xFFFFFFFF})

		_, err := os.Stat(filepath.Join(dir, "brightness"))
		assert.True(t, os.IsNotExist(err))
	})
}
