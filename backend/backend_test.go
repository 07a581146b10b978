package backend

import "testing"

func TestNew_InitialMessage(t *testing.T) {
	b := New()

	if got := b.Message(); got != "Hello from Backend" {
		t.Errorf("Message() = %q, want %q", got, "Hello from Backend")
	}
}

func TestSetMessage_NotifiesOnChange(t *testing.T) {
	b := New()

	notified := 0
	b.Subscribe(func() { notified++ })

	b.SetMessage("first")
	b.SetMessage("second")

	if notified != 2 {
		t.Errorf("notified %d times, want 2", notified)
	}
	if got := b.Message(); got != "second" {
		t.Errorf("Message() = %q, want %q", got, "second")
	}
}

func TestSetMessage_NoNotificationForEqualValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"initial value", "Hello from Backend"},
		{"empty after empty", ""},
		{"repeated custom value", "same"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.SetMessage(tt.value) // may or may not notify; establishes the value

			notified := 0
			b.Subscribe(func() { notified++ })

			b.SetMessage(tt.value)

			if notified != 0 {
				t.Errorf("redundant set notified %d times, want 0", notified)
			}
			if got := b.Message(); got != tt.value {
				t.Errorf("Message() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSetMessage_SubscriberSeesNewValue(t *testing.T) {
	b := New()

	var seen string
	b.Subscribe(func() { seen = b.Message() })

	b.SetMessage("updated")

	if seen != "updated" {
		t.Errorf("subscriber saw %q, want %q", seen, "updated")
	}
}

func TestHandleActivation(t *testing.T) {
	b := New()

	notified := 0
	b.Subscribe(func() { notified++ })

	b.HandleActivation()

	if got := b.Message(); got != "Button clicked from QML!" {
		t.Errorf("Message() = %q, want %q", got, "Button clicked from QML!")
	}
	if notified != 1 {
		t.Errorf("first activation notified %d times, want 1", notified)
	}

	// A second activation is a redundant set: no further notification.
	b.HandleActivation()

	if notified != 1 {
		t.Errorf("second activation notified %d times total, want 1", notified)
	}
}

func TestSubscribe_MultipleHandlersRunInOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe(func() { order = append(order, "first") })
	b.Subscribe(func() { order = append(order, "second") })

	b.SetMessage("go")

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("handler order = %v, want [first second]", order)
	}
}
