package shell

// Indices of the two fixed display slots.
const (
	// SlotConnect holds the connect page and is active at startup.
	SlotConnect = 0
	// SlotLogin holds the login page.
	SlotLogin = 1

	slotCount = 2
)

// Shell owns both pages and the active-slot selector. Exactly one slot
// is active at any time; only the shell's own event handlers mutate the
// selector.
type Shell struct {
	connect *ConnectPage
	login   *LoginPage
	slots   [slotCount]Page

	active    int
	observers []func(slot int)
}

// New constructs the shell: both pages are created here, placed into
// their fixed slots, and their events wired to the two transitions.
// The connect page is active first.
func New() *Shell {
	s := &Shell{
		connect: NewConnectPage(),
		login:   NewLoginPage(),
		active:  SlotConnect,
	}
	s.slots[SlotConnect] = s.connect
	s.slots[SlotLogin] = s.login

	s.connect.Subscribe(func() { s.setActive(SlotLogin) })
	s.login.Subscribe(func() { s.setActive(SlotConnect) })

	return s
}

// ActiveSlot returns the index of the currently active slot.
func (s *Shell) ActiveSlot() int {
	return s.active
}

// ActivePage returns the page in the currently active slot.
func (s *Shell) ActivePage() Page {
	return s.slots[s.active]
}

// Pages returns the pages in slot order. Rendering layers use this to
// populate their display container.
func (s *Shell) Pages() []Page {
	return s.slots[:]
}

// ConnectPage returns the page in the connect slot.
func (s *Shell) ConnectPage() *ConnectPage {
	return s.connect
}

// LoginPage returns the page in the login slot.
func (s *Shell) LoginPage() *LoginPage {
	return s.login
}

// OnSlotChange registers an observer for active-slot changes. Observers
// run synchronously, in registration order, and only when the active
// slot actually changed.
func (s *Shell) OnSlotChange(observer func(slot int)) {
	s.observers = append(s.observers, observer)
}

// setActive moves the selector to slot. Re-entering the current slot is
// a no-op: observers are not notified for it.
func (s *Shell) setActive(slot int) {
	if s.active == slot {
		return
	}
	s.active = slot
	for _, observer := range s.observers {
		observer(slot)
	}
}
