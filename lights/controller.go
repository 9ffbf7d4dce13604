package lights

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNotSupported is returned by SetLight when no backend exists for the
// requested type.
var ErrNotSupported = errors.New("unsupported light type")

type backend struct {
	typ     Type
	state   State
	handler Handler
}

// Controller owns the fixed backend set and arbitrates which cached state
// drives each physical LED. All access is serialized through one mutex,
// including the device writes performed while it is held: sysfs attributes
// are in-memory kernel objects and call volume is human-scale, so holding
// the lock across I/O keeps renders free of partial-update races at no real
// cost.
type Controller struct {
	mu       sync.Mutex
	backends []*backend
	logger   zerolog.Logger
}

// NewController builds the backend set. Slice order is priority order: when
// several types share a handler, the first lit one wins.
func NewController(notification, backlight Handler, logger zerolog.Logger) *Controller {
	return &Controller{
		backends: []*backend{
			{typ: TypeAttention, state: StateOff, handler: notification},
			{typ: TypeNotifications, state: StateOff, handler: notification},
			{typ: TypeBattery, state: StateOff, handler: notification},
			{typ: TypeBacklight, state: StateOff, handler: backlight},
		},
		logger: logger,
	}
}

// SetLight caches state for typ, then re-renders the physical LED behind its
// handler. The rendered state is the first lit backend in priority order
// among those sharing the handler; when none is lit the handler still runs
// with the just-cached off state so the hardware actually turns off.
func (c *Controller) SetLight(typ Type, state State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var handler Handler
	for _, b := range c.backends {
		if b.typ == typ {
			b.state = state
			handler = b.handler
		}
	}

	if handler == nil {
		c.logger.Error().Str("type", string(typ)).Msg("Failed to set light for unsupported type")
		return ErrNotSupported
	}

	for _, b := range c.backends {
		if b.handler == handler && b.state.IsLit() {
			b.handler.Apply(b.state)
			return nil
		}
	}

	handler.Apply(state)
	return nil
}

// SupportedTypes snapshots the configured types in priority order.
func (c *Controller) SupportedTypes() []Type {
	c.mu.Lock()
	defer c.mu.Unlock()

	types := make([]Type, 0, len(c.backends))
	for _, b := range c.backends {
		types = append(types, b.typ)
	}
	return types
}
