// Package dialog implements the modal flows the orchestrator uses to ask the
// user for connections, consent and tool actions.
package dialog

import (
	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
)

// Kind names a dialog. It prefixes the channel identifiers and dialog ids.
type Kind string

const (
	KindAddConnection         Kind = "add-connection"
	KindSelectConnection      Kind = "select-connection"
	KindSelectMultiConnection Kind = "select-multi-connection"
	KindCSPConsent            Kind = "csp-consent"
	KindToolDetail            Kind = "tool-detail"
)

// Size is the dialog surface size in pixels.
type Size struct {
	Width  int
	Height int
}

// Sizes holds the surface size per dialog kind.
type Sizes map[Kind]Size

// DefaultSizes returns the built-in dialog sizes.
func DefaultSizes() Sizes {
	return Sizes{
		KindAddConnection:         {Width: 520, Height: 640},
		KindSelectConnection:      {Width: 520, Height: 560},
		KindSelectMultiConnection: {Width: 880, Height: 620},
		KindCSPConsent:            {Width: 560, Height: 480},
		KindToolDetail:            {Width: 640, Height: 560},
	}
}

// options builds the window options for kind, falling back to the default size.
func (s Sizes) options(kind Kind, html string) port.ModalWindowOptions {
	size, ok := s[kind]
	if !ok || size.Width <= 0 || size.Height <= 0 {
		size = DefaultSizes()[kind]
	}
	return port.ModalWindowOptions{HTML: html, Width: size.Width, Height: size.Height}
}

// feedback is the inline message shown in a dialog.
type feedback struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
