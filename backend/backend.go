// Package backend provides the demo backend exposed to the rendering
// layers: a single text property with a change notification.
//
// The property follows the observer pattern described in package shell:
// subscribers are invoked synchronously on the UI thread whenever the
// value actually changes. Redundant sets produce no notification, so a
// bound label is never re-rendered for a no-op write.
package backend

// Fixed values of the demo property.
const (
	initialMessage    = "Hello from Backend"
	activationMessage = "Button clicked from QML!"
)

// Backend holds one notifiable text property. It is independent of the
// navigation shell and exists to demonstrate property binding between
// a backend object and a rendering layer.
type Backend struct {
	message  string
	handlers []func()
}

// New creates a backend with the fixed initial message.
func New() *Backend {
	return &Backend{message: initialMessage}
}

// Message returns the current value. No side effects.
func (b *Backend) Message() string {
	return b.message
}

// SetMessage stores msg and notifies subscribers. The notification
// fires at most once per call, and only when the value actually
// changed.
func (b *Backend) SetMessage(msg string) {
	if b.message == msg {
		return
	}
	b.message = msg
	for _, handler := range b.handlers {
		handler()
	}
}

// Subscribe registers a change handler. Handlers run synchronously, in
// registration order. A bound label's re-render is just one such
// handler.
func (b *Backend) Subscribe(handler func()) {
	b.handlers = append(b.handlers, handler)
}

// HandleActivation is the zero-argument handler wired to the demo
// button in the rendering layers. It sets a canned message; the
// equality check in SetMessage still applies.
func (b *Backend) HandleActivation() {
	b.SetMessage(activationMessage)
}
