// Package sysfs reads and writes small integer values in LED attribute
// files. Failures stay local: an unreadable attribute means the feature is
// absent on this hardware, an unwritable one is logged and skipped.
package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Attribute names common to every LED device; blink attributes belong to
// the notify handler.
const (
	Brightness    = "brightness"
	MaxBrightness = "max_brightness"
)

// Attrs is the attribute surface of one LED device directory.
type Attrs interface {
	// ReadInt returns the attribute value, or false when the attribute
	// cannot be opened or parsed.
	ReadInt(name string) (int, bool)
	// WriteInt writes the textual value, dropping the write when the
	// attribute cannot be opened.
	WriteInt(name string, value int)
}

// Dir is the sysfs directory of a single LED device.
type Dir struct {
	path   string
	logger zerolog.Logger
}

func NewDir(path string, logger zerolog.Logger) *Dir {
	return &Dir{path: path, logger: logger.With().Str("device", path).Logger()}
}

func (d *Dir) ReadInt(name string) (int, bool) {
	raw, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		d.logger.Warn().Err(err).Str("attr", name).Msg("Failed to read attribute")
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		d.logger.Warn().Err(err).Str("attr", name).Msg("Failed to parse attribute")
		return 0, false
	}
	d.logger.Debug().Str("attr", name).Int("value", value).Msg("Read attribute")
	return value, true
}

func (d *Dir) WriteInt(name string, value int) {
	err := os.WriteFile(filepath.Join(d.path, name), []byte(strconv.Itoa(value)), 0644)
	if err != nil {
		d.logger.Warn().Err(err).Str("attr", name).Msg("Failed to write attribute")
	}
}

var _ Attrs = (*Dir)(nil)
