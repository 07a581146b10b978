package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// CSS styles for the Deskgate window. Uses theme-aware colors that
// work with system dark/light mode.
const appCSS = `
/* Page titles */
.page-title {
    font-weight: 700;
    font-size: 22px;
}

.page-subtitle {
    font-size: 13px;
    opacity: 0.7;
}

/* Backend demo bar */
.backend-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
}

.backend-message {
    font-size: 12px;
    opacity: 0.8;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
