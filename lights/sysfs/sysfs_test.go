package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirReadInt(t *testing.T) {
	dir := t.TempDir()
	device := NewDir(dir, zerolog.Nop())

	t.Run("reads an integer attribute", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, MaxBrightness), []byte("255\n"), 0644))

		value, ok := device.ReadInt(MaxBrightness)

		require.True(t, ok)
		assert.Equal(t, 255, value)
	})

	t.Run("missing attribute is absent, not an error", func(t *testing.T) {
		_, ok := device.ReadInt("breath")

		assert.False(t, ok)
	})

	t.Run("unparsable attribute is absent", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "trigger"), []byte("[none]"), 0644))

		_, ok := device.ReadInt("trigger")

		assert.False(t, ok)
	})
}

func TestDirWriteInt(t *testing.T) {
	t.Run("writes the textual value", func(t *testing.T) {
		dir := t.TempDir()
		device := NewDir(dir, zerolog.Nop())

		device.WriteInt(Brightness, 42)

		raw, err := os.ReadFile(filepath.Join(dir, Brightness))
		require.NoError(t, err)
		assert.Equal(t, "42", string(raw))
	})

	t.Run("unwritable attribute is a silent no-op", func(t *testing.T) {
		device := NewDir(filepath.Join(t.TempDir(), "nonexistent"), zerolog.Nop())

		device.WriteInt(Brightness, 42)
	})
}
