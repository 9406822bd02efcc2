package tty

import "sync"

var defaultController = sync.OnceValue(func() *Controller {
	return NewController(NewFileTable())
})

// Default returns the Controller for the standard streams of the process.
func Default() *Controller {
	return defaultController()
}

// SetRaw calls SetRaw on the default Controller.
func SetRaw(id ResourceID, raw, allowSignals bool) error {
	return Default().SetRaw(id, raw, allowSignals)
}

// ConsoleSizeAny calls ConsoleSizeAny on the default Controller.
func ConsoleSizeAny() (ConsoleSize, error) {
	return Default().ConsoleSizeAny()
}
