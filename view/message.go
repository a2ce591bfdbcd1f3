package view

import "github.com/AnatoleLucet/sigui/style"

// Message is an update queued for a view. The set of messages is closed.
type Message interface {
	isMessage()
}

type (
	// RequestStyle re-resolves the style of the view, and of its whole
	// subtree when Recursive is set.
	RequestStyle struct{ Recursive bool }

	RequestPaint struct{}

	// Focus gives the keyboard focus to the view. Visible is set when the
	// focus came from the keyboard.
	Focus struct{ Visible bool }

	ClearFocus struct{}

	Active struct{}

	ClearActive struct{}

	SetDisabled struct{ Disabled bool }

	SetSelected struct{ Selected bool }

	// SetStyle replaces the inline style.
	SetStyle struct{ Style *style.Style }

	AddClass struct{ Class style.Class }

	RemoveClass struct{ Class style.Class }

	// State hands Payload to the view's Update method.
	State struct{ Payload any }
)

func (RequestStyle) isMessage() {}
func (RequestPaint) isMessage() {}
func (Focus) isMessage()        {}
func (ClearFocus) isMessage()   {}
func (Active) isMessage()       {}
func (ClearActive) isMessage()  {}
func (SetDisabled) isMessage()  {}
func (SetSelected) isMessage()  {}
func (SetStyle) isMessage()     {}
func (AddClass) isMessage()     {}
func (RemoveClass) isMessage()  {}
func (State) isMessage()        {}

type envelope struct {
	id  ID
	msg Message
}
