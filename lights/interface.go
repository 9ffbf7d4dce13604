package lights

// Handler renders a resolved state onto one physical LED. There are exactly
// two implementations, backlight and notify; several logical types may share
// one handler instance and compete for its LED.
type Handler interface {
	Init(config map[string]interface{}) error
	Apply(state State)
}
