package notify

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tr4cks/lights/lights"
	"github.com/tr4cks/lights/lights/sysfs"
)

// DefaultPath is the notification LED device on the target hardware.
const DefaultPath = "/sys/class/leds/red"

// Blink engine attributes of the notification LED.
const (
	breath   = "breath"
	delayOn  = "delay_on"
	delayOff = "delay_off"
)

type Config struct {
	Path string
}

// Handler drives the notification LED, shared by the attention,
// notifications and battery types.
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
		return fmt.Errorf("error validating %q handler configuration: %w", "notify", err)
	}
	if h.Config.Path == "" {
		h.Config.Path = DefaultPath
	}
	h.dev = sysfs.NewDir(h.Config.Path, h.logger)
	return nil
}

// Apply renders the notification LED. Breath is always disabled first so
// stale blink timings cannot leak into a steady render; for timed flashes
// both delays must land before blink is re-armed.
func (h *Handler) Apply(state lights.State) {
	max, ok := h.dev.ReadInt(sysfs.MaxBrightness)
	if !ok {
		return
	}

	h.dev.WriteInt(breath, 0)

	if state.Flash == lights.FlashTimed {
		h.dev.WriteInt(delayOff, int(state.FlashOffMs))
		h.dev.WriteInt(delayOn, int(state.FlashOnMs))
		h.dev.WriteInt(breath, 1)
	} else {
		h.dev.WriteInt(sysfs.Brightness, lights.Scaled(state, max))
	}
}

var _ lights.Handler = (*Handler)(nil)
