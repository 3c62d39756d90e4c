package entity

import "fmt"

// SlotKind names one of the two lists of the dual connection dialog.
type SlotKind string

const (
	SlotPrimary   SlotKind = "primary"
	SlotSecondary SlotKind = "secondary"
)

// SlotState is the authentication state of one slot.
type SlotState string

const (
	SlotUnauthenticated SlotState = "unauthenticated"
	SlotAuthenticating  SlotState = "authenticating"
	SlotAuthenticated   SlotState = "authenticated"
	// SlotFailed is retryable: a new authentication may be started.
	SlotFailed SlotState = "failed"
)

// Slot holds the state of a single connection slot.
type Slot struct {
	State        SlotState    `json:"state"`
	ConnectionID ConnectionID `json:"connectionId,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// DualSelection is the state machine behind primary/secondary connection
// selection. A connection held by one slot cannot be chosen by the other.
type DualSelection struct {
	Primary           Slot
	Secondary         Slot
	SecondaryRequired bool
}

// NewDualSelection creates a selection with both slots unauthenticated.
func NewDualSelection(secondaryRequired bool) *DualSelection {
	return &DualSelection{
		Primary:           Slot{State: SlotUnauthenticated},
		Secondary:         Slot{State: SlotUnauthenticated},
		SecondaryRequired: secondaryRequired,
	}
}

func (d *DualSelection) slot(kind SlotKind) (*Slot, *Slot, error) {
	switch kind {
	case SlotPrimary:
		return &d.Primary, &d.Secondary, nil
	case SlotSecondary:
		return &d.Secondary, &d.Primary, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown list type %q", ErrValidation, kind)
	}
}

// Disabled reports whether id is held by the other slot and so cannot be
// chosen in the kind list.
func (d *DualSelection) Disabled(kind SlotKind, id ConnectionID) bool {
	_, other, err := d.slot(kind)
	if err != nil || id == "" {
		return false
	}
	if other.ConnectionID != id {
		return false
	}
	return other.State == SlotAuthenticated || other.State == SlotAuthenticating
}

// BeginAuthentication moves the slot to Authenticating for id.
func (d *DualSelection) BeginAuthentication(kind SlotKind, id ConnectionID) error {
	own, _, err := d.slot(kind)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: connection id is required", ErrValidation)
	}
	if d.Disabled(kind, id) {
		return fmt.Errorf("%w: connection %s is already selected in the other list", ErrValidation, id)
	}
	if own.State == SlotAuthenticating {
		return fmt.Errorf("%w: %s authentication already in progress", ErrValidation, kind)
	}
	*own = Slot{State: SlotAuthenticating, ConnectionID: id}
	return nil
}

// CompleteAuthentication records the outcome for id. Results for a slot that
// has since moved on are ignored and false is returned.
func (d *DualSelection) CompleteAuthentication(kind SlotKind, id ConnectionID, authErr error) bool {
	own, _, err := d.slot(kind)
	if err != nil {
		return false
	}
	if own.State != SlotAuthenticating || own.ConnectionID != id {
		return false
	}
	if authErr != nil {
		*own = Slot{State: SlotFailed, ConnectionID: id, Error: authErr.Error()}
		return true
	}
	*own = Slot{State: SlotAuthenticated, ConnectionID: id}
	return true
}

// Reset returns the slot to Unauthenticated.
func (d *DualSelection) Reset(kind SlotKind) {
	if own, _, err := d.slot(kind); err == nil {
		*own = Slot{State: SlotUnauthenticated}
	}
}

// CanConfirm reports whether the confirm control is enabled.
func (d *DualSelection) CanConfirm() bool {
	if d.Primary.State != SlotAuthenticated {
		return false
	}
	return d.Secondary.State == SlotAuthenticated || !d.SecondaryRequired
}

// Result returns the confirmed pair. An optional secondary that is not
// authenticated is returned empty.
func (d *DualSelection) Result() (ConnectionID, ConnectionID, error) {
	if !d.CanConfirm() {
		return "", "", fmt.Errorf("%w: selection is not complete", ErrValidation)
	}
	var secondary ConnectionID
	if d.Secondary.State == SlotAuthenticated {
		secondary = d.Secondary.ConnectionID
	}
	return d.Primary.ConnectionID, secondary, nil
}
