package backlight

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tr4cks/lights/lights"
	"github.com/tr4cks/lights/lights/sysfs"
)

// DefaultPath is the LCD backlight device on the target hardware.
const DefaultPath = "/sys/class/leds/lcd-backlight"

type Config struct {
	Path string
}

// Handler drives the LCD backlight brightness.
type Handler struct {
	Config Config
	dev    sysfs.Attrs
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Init(config map[string]interface{}) error {
	err := lights.Validate(config, &h.Config)
	if err != nil {
		return fmt.Errorf("error validating %q handler configuration: %w", "backlight", err)
	}
	if h.Config.Path == "" {
		h.Config.Path = DefaultPath
	}
	h.dev = sysfs.NewDir(h.Config.Path, h.logger)
	return nil
}

// Apply scales the state's luma into the device range. Without a readable
// max_brightness the backlight is left untouched.
func (h *Handler) Apply(state lights.State) {
	max, ok := h.dev.ReadInt(sysfs.MaxBrightness)
	if !ok {
		return
	}
	h.dev.WriteInt(sysfs.Brightness, lights.Scaled(state, max))
}

var _ lights.Handler = (*Handler)(nil)
