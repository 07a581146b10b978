package shell

// Page names used by rendering layers to address display slots
// (the gtk.Stack child names in package ui).
const (
	PageNameConnect = "connect"
	PageNameLogin   = "login"
)

// Page is a displayable unit exposing exactly one outbound navigation
// event. Pages are created and owned by the Shell for its whole
// lifetime; rendering layers only draw them and forward user input.
type Page interface {
	// Name returns the stable identifier of the page.
	Name() string
	// Title returns the human-readable page title.
	Title() string
	// Subscribe registers a handler for the page's single event.
	// Handlers run synchronously, in registration order.
	Subscribe(handler func())
}

// ConnectPage is the page shown when the shell starts. Its event is
// "connect requested".
type ConnectPage struct {
	handlers []func()
}

// NewConnectPage creates a connect page with no subscribers.
func NewConnectPage() *ConnectPage {
	return &ConnectPage{}
}

// Name returns the page identifier.
func (p *ConnectPage) Name() string { return PageNameConnect }

// Title returns the page title.
func (p *ConnectPage) Title() string { return "Connect" }

// Subscribe registers a handler for the connect-requested event.
func (p *ConnectPage) Subscribe(handler func()) {
	p.handlers = append(p.handlers, handler)
}

// RequestConnect fires the connect-requested event. Rendering layers
// call it when the user activates the page's connect control.
func (p *ConnectPage) RequestConnect() {
	for _, handler := range p.handlers {
		handler()
	}
}

// LoginPage is the page shown after a connect request. Its event is
// "disconnect requested".
type LoginPage struct {
	handlers []func()
}

// NewLoginPage creates a login page with no subscribers.
func NewLoginPage() *LoginPage {
	return &LoginPage{}
}

// Name returns the page identifier.
func (p *LoginPage) Name() string { return PageNameLogin }

// Title returns the page title.
func (p *LoginPage) Title() string { return "Login" }

// Subscribe registers a handler for the disconnect-requested event.
func (p *LoginPage) Subscribe(handler func()) {
	p.handlers = append(p.handlers, handler)
}

// RequestDisconnect fires the disconnect-requested event. Rendering
// layers call it when the user activates the page's disconnect control.
func (p *LoginPage) RequestDisconnect() {
	for _, handler := range p.handlers {
		handler()
	}
}
