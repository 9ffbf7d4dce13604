package lights

// Type identifies one logical light indicator.
type Type string

const (
	TypeBacklight     Type = "backlight"
	TypeBattery       Type = "battery"
	TypeNotifications Type = "notifications"
	TypeAttention     Type = "attention"
)

// Flash selects how the hardware renders a state: steady or blinking with
// explicit on/off timings.
type Flash string

const (
	FlashNone  Flash = "none"
	FlashTimed Flash = "timed"
)

// State is one requested rendering of a light: an ARGB color plus optional
// blink timings. States are plain values; the controller only ever keeps the
// most recent one per type.
type State struct {
	Color      uint32 `json:"color"`
	Flash      Flash  `json:"flash" binding:"omitempty,oneof=none timed"`
	FlashOnMs  uint32 `json:"flash_on_ms"`
	FlashOffMs uint32 `json:"flash_off_ms"`
}

// StateOff is the initial state of every backend: opaque black.
var StateOff = State{Color: 0xFF000000, Flash: FlashNone}
